// Package cmd wires the four graph operations — adjacency, degree,
// laplacian, and layout — onto a cobra command tree operating on a TOML
// drawing document.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/veckit/spectral/extract"
	"github.com/veckit/spectral/matrix"
	"github.com/veckit/spectral/page"
)

var version = "0.1.0"

// docPath is the document every subcommand operates on.
var docPath string

var rootCmd = &cobra.Command{
	Use:   "spectral",
	Short: "spectral — graph matrices and spectral layout for drawing documents",
	Long: "spectral treats the selected shapes of a drawing document as graph\n" +
		"vertices and the selected open strokes as edges. It shows the graph's\n" +
		"adjacency, degree, and laplacian matrices in a paste-ready bracket\n" +
		"format for external eigensolvers, and lays the selection out again\n" +
		"from a pair of externally computed coordinate arrays.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&docPath, "doc", "d", "document.toml",
		"drawing document to operate on (TOML)")

	rootCmd.AddCommand(
		showCmd(matrix.Adjacency),
		showCmd(matrix.Degree),
		showCmd(matrix.Laplacian),
		layoutCmd(),
	)
}

// loadSelection loads the document and extracts the selected graph.
func loadSelection() (*page.Page, *extract.Graph, error) {
	p, err := page.Load(docPath)
	if err != nil {
		return nil, nil, err
	}
	g, err := extract.FromSelection(p)
	if err != nil {
		return nil, nil, err
	}

	return p, g, nil
}
