package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-engine/internal/domain"
	"svw.info/sudoku-engine/internal/solver"
)

var solveAll bool

var commandSolve = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve a puzzle read from a file or stdin",
	Long: `Solve a puzzle read from a file or stdin.

The puzzle is 81 cells of digits, with '0' or '.' for empty cells, either
on one line or as nine rows.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	commandSolve.Flags().BoolVar(&solveAll, "all", false, "enumerate every solution")
	mainCommand.AddCommand(commandSolve)
}

func readBoard(args []string) (*domain.Board, error) {
	var text []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		text, err = os.ReadFile(args[0])
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, err
	}
	return domain.ParseBoard(string(text))
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := readBoard(args)
	if err != nil {
		return err
	}
	engine := solver.New()
	ctx := cmd.Context()

	if solveAll {
		all, st, err := engine.SolveAll(ctx, b)
		if err != nil {
			return err
		}
		for i, s := range all {
			fmt.Printf("solution %d:\n%s\n", i+1, s)
		}
		fmt.Printf("%d solution(s), %d nodes, %v\n", len(all), st.Nodes, st.Duration)
		return nil
	}

	out, st, err := engine.Solve(ctx, b)
	if errors.Is(err, solver.ErrNoSolution) {
		fmt.Printf("no solution (%d nodes, %v)\n", st.Nodes, st.Duration)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%d nodes, %v\n", out, st.Nodes, st.Duration)
	return nil
}
