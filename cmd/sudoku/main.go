package main

import (
	"os"

	"github.com/spf13/cobra"
)

var mainCommand = &cobra.Command{
	Use:   "sudoku",
	Short: "Solve, check and generate 9x9 Sudoku puzzles",
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
