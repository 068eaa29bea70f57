package main

import (
	"os"

	"github.com/veckit/spectral/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
