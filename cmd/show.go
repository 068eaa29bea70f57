package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veckit/spectral/extract"
	"github.com/veckit/spectral/internal/ui"
	"github.com/veckit/spectral/matrix"
	"github.com/veckit/spectral/present"
)

// showCmd builds one of the three read-only matrix display commands.
// A missing selection is a non-fatal warning, not an error exit.
func showCmd(kind matrix.Kind) *cobra.Command {
	return &cobra.Command{
		Use:   kind.String(),
		Short: fmt.Sprintf("Show the %s matrix of the selected graph", kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, g, err := loadSelection()
			if err != nil {
				return err
			}

			if err = present.Render(cmd.OutOrStdout(), g, kind); err != nil {
				if errors.Is(err, extract.ErrNoSelection) {
					ui.Warning("nothing qualifying selected — select shapes and connecting strokes first")

					return nil
				}

				return err
			}

			return nil
		},
	}
}
