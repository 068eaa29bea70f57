package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veckit/spectral/extract"
	"github.com/veckit/spectral/internal/ui"
	"github.com/veckit/spectral/layout"
	"github.com/veckit/spectral/page"
	"github.com/veckit/spectral/present"
)

// errCancelled aborts the layout before any mutation (dialog reject).
var errCancelled = errors.New("cancelled")

// layoutCmd builds the "spectral layout" command: the coordinate-input
// dialog, the plan, the atomic apply, and the document save.
func layoutCmd() *cobra.Command {
	var (
		exFlag  string
		eyFlag  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Re-position the selection from externally computed coordinates",
		Long: "Reads one (ex, ey) coordinate pair per selected vertex — from the\n" +
			"--ex/--ey lists or interactively — stretches their range onto the\n" +
			"selection's bounding box (largest ey on top), moves every vertex\n" +
			"there, and redraws every stroke as a straight segment.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, g, err := loadSelection()
			if err != nil {
				return err
			}
			if g.Order() == 0 {
				ui.Warning("nothing qualifying selected — select shapes and connecting strokes first")

				return nil
			}

			ex, ey, err := readCoords(cmd, g, exFlag, eyFlag)
			if errors.Is(err, errCancelled) {
				ui.Warning("layout cancelled, document untouched")

				return nil
			}
			if err != nil {
				return err
			}

			tx, err := layout.Plan(p, g, ex, ey)
			if err != nil {
				return err
			}
			if err = page.NewHistory().Do(tx); err != nil {
				return err
			}

			if outPath == "" {
				outPath = docPath
			}
			if err = page.Save(outPath, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s laid out %d vertices and %d edges → %s\n",
				ui.Good.Sprint("✓"), tx.VertexCount(), tx.EdgeCount(), outPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&exFlag, "ex", "", "comma-separated x coordinates, one per vertex")
	cmd.Flags().StringVar(&eyFlag, "ey", "", "comma-separated y coordinates, one per vertex")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the mutated document here (default: --doc in place)")

	return cmd
}

// readCoords resolves the coordinate arrays: from the flags when both are
// given, otherwise by prompting one "ex ey" pair per vertex. Input is
// parsed strictly before anything else happens.
func readCoords(cmd *cobra.Command, g *extract.Graph, exFlag, eyFlag string) (ex, ey []float64, err error) {
	if exFlag != "" || eyFlag != "" {
		ex, err = layout.ParseCoords(splitList(exFlag))
		if err != nil {
			return nil, nil, err
		}
		ey, err = layout.ParseCoords(splitList(eyFlag))
		if err != nil {
			return nil, nil, err
		}

		return ex, ey, nil
	}

	return promptCoords(cmd.InOrStdin(), cmd.OutOrStdout(), g)
}

// splitList splits a comma-separated flag value into trimmed fields.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields
}

// promptCoords is the interactive coordinate-input dialog: one line per
// vertex holding the two values, blank line or EOF cancels. This is the
// only suspend point of the operation; cancelling here aborts before any
// mutation.
func promptCoords(in io.Reader, out io.Writer, g *extract.Graph) (ex, ey []float64, err error) {
	labels := present.Labels(g)
	fmt.Fprintf(out, "%s\n", ui.Brand.Sprint("enter ex ey per vertex (blank line cancels)"))

	sc := bufio.NewScanner(in)
	ex = make([]float64, 0, g.Order())
	ey = make([]float64, 0, g.Order())
	for i := range g.Vertices {
		fmt.Fprintf(out, "%s: ", ui.Subtle.Sprint(labels[i]))
		if !sc.Scan() {
			return nil, nil, errCancelled
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			return nil, nil, errCancelled
		}
		pair := strings.Fields(line)
		if len(pair) != 2 {
			return nil, nil, fmt.Errorf("vertex %d: want two values, got %d: %w",
				i+1, len(pair), layout.ErrBadCoordinate)
		}
		vals, parseErr := layout.ParseCoords(pair)
		if parseErr != nil {
			return nil, nil, fmt.Errorf("vertex %d: %w", i+1, layout.ErrBadCoordinate)
		}
		ex = append(ex, vals[0])
		ey = append(ey, vals[1])
	}

	return ex, ey, nil
}
