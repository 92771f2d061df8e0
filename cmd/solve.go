package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bitgrid/sudoku/internal/board"
	"github.com/bitgrid/sudoku/internal/solver"
)

var outputFile string

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve Sudoku puzzles from a file",
		Long: `Solve every puzzle in a file, one puzzle per line.

Each line must be exactly 81 characters: '0' for an empty cell, '1'-'9' for
a given. Solutions are written one per line, in input order. The run aborts
on the first unsolvable or malformed puzzle.

Examples:
  sudoku solve puzzles.txt
  sudoku solve puzzles.txt -o solutions.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open puzzle file: %w", err)
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return solveAll(in, out)
}

// solveAll solves every puzzle line from r, writing each solution to w
// before reading the next line. The first failure aborts the run.
func solveAll(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		b, err := board.ParseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		s := solver.New(b)
		start := time.Now()
		solution, err := s.Solve()
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}

		log.WithFields(logrus.Fields{
			"line":     lineNum,
			"duration": time.Since(start),
			"nodes":    s.Stats.Nodes,
			"branches": s.Stats.Branches,
		}).Debug("puzzle solved")

		if _, err := fmt.Fprintln(w, solution.String()); err != nil {
			return fmt.Errorf("failed to write solution: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read puzzle file: %w", err)
	}

	return nil
}
