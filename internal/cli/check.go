package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jswint/gridlock"
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check <grid>",
		Short: "Check that a puzzle has exactly one solution",
		Long: `Check that a puzzle, given as a grid string in row-major order,
has exactly one solution. Use '.' or '0' for blank cells. The string
length determines the board size: 16 -> 4x4, 36 -> 6x6, 81 -> 9x9.

Example:
  gridlock check "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	grid, err := parseGridString(args[0])
	if err != nil {
		return err
	}

	unique, err := gridlock.CheckUnique(grid)
	if err != nil {
		return err
	}
	if !unique {
		return fmt.Errorf("puzzle does not have a unique solution")
	}

	fmt.Println("puzzle has exactly one solution")
	return nil
}

// parseGridString converts a row-major grid string into a Grid,
// inferring the board size from the string length.
func parseGridString(s string) (gridlock.Grid, error) {
	var size int
	switch len(s) {
	case 16:
		size = 4
	case 36:
		size = 6
	case 81:
		size = 9
	default:
		return nil, fmt.Errorf("grid string must be 16, 36, or 81 characters, got %d", len(s))
	}

	g := make(gridlock.Grid, size)
	for row := 0; row < size; row++ {
		g[row] = make([]int, size)
		for col := 0; col < size; col++ {
			ch := s[row*size+col]
			switch {
			case ch == '.' || ch == '0':
				// Blank cell
			case ch >= '1' && ch <= '9':
				g[row][col] = int(ch - '0')
			default:
				return nil, fmt.Errorf("invalid character '%c' at position %d", ch, row*size+col)
			}
		}
	}
	return g, nil
}
