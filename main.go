package main

import "github.com/bitgrid/sudoku/cmd"

func main() {
	cmd.Execute()
}
