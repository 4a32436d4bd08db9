package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jswint/gridlock"
	"github.com/jswint/gridlock/internal/board"
)

var (
	genSize    int
	numPuzzles int
	blankSpec  string
	symmetric  bool
	genSeed    int64
	genTimeout time.Duration
	outputFile string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate puzzles",
		Long: `Generate one or more puzzles with a guaranteed unique solution.

Examples:
  gridlock gen --size 9
  gridlock gen --size 6 -n 5 --blank 55%
  gridlock gen --size 9 --seed 42 --output puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&genSize, "size", "s", 9, "Board size: 4, 6, or 9")
	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&blankSpec, "blank", "b", "0.6", "Target blank fraction, e.g. 0.6 or 60%")
	genCmd.Flags().BoolVar(&symmetric, "symmetric", true, "Carve point-symmetric cell pairs (9x9 only by default)")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed for reproducible puzzles (0 = random)")
	genCmd.Flags().DurationVar(&genTimeout, "timeout", 10*time.Second, "Carving time budget per puzzle")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., puzzles.html)")

	rootCmd.AddCommand(genCmd)
}

// parseBlankFraction parses a blank fraction which can be:
// - A plain fraction: "0.6"
// - A percentage: "60%"
// Returns a value in (0, 1) or an error.
func parseBlankFraction(s string) (float64, error) {
	s = strings.TrimSpace(s)

	frac := 0.0
	if strings.HasSuffix(s, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid blank fraction: %w", err)
		}
		frac = pct / 100
	} else {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid blank fraction: %w", err)
		}
		frac = f
	}

	if frac <= 0 || frac >= 1 {
		return 0, fmt.Errorf("blank fraction %s out of range (0, 1)", s)
	}
	return frac, nil
}

// applyConfig overlays config-file defaults onto flags the user did not
// set explicitly.
func applyConfig(cmd *cobra.Command, c *Config) {
	if c.Size != 0 && !cmd.Flags().Changed("size") {
		genSize = c.Size
	}
	if c.Number != 0 && !cmd.Flags().Changed("number") {
		numPuzzles = c.Number
	}
	if c.BlankFraction != "" && !cmd.Flags().Changed("blank") {
		blankSpec = c.BlankFraction
	}
	if c.Symmetric != nil && !cmd.Flags().Changed("symmetric") {
		symmetric = *c.Symmetric
	}
	if c.Seed != 0 && !cmd.Flags().Changed("seed") {
		genSeed = c.Seed
	}
	if c.Output != "" && !cmd.Flags().Changed("output") {
		outputFile = c.Output
	}
}

func runGen(cmd *cobra.Command, args []string) error {
	if configFile != "" {
		c, err := loadConfig(configFile)
		if err != nil {
			return err
		}
		applyConfig(cmd, c)
	}

	if !board.SupportedSize(genSize) {
		return fmt.Errorf("%w: %d (supported sizes: 4, 6, 9)", board.ErrUnsupportedSize, genSize)
	}
	blankFraction, err := parseBlankFraction(blankSpec)
	if err != nil {
		return err
	}
	if numPuzzles < 1 {
		return fmt.Errorf("number of puzzles must be at least 1, got %d", numPuzzles)
	}

	// Each generation owns its grids, so puzzles can be produced in
	// parallel; results land in a pre-sized slice to keep their order.
	puzzles := make([]*gridlock.Puzzle, numPuzzles)
	start := time.Now()

	var g errgroup.Group
	for i := 0; i < numPuzzles; i++ {
		i := i
		g.Go(func() error {
			sym := symmetric && genSize == 9
			opts := gridlock.Options{
				BlankFraction: blankFraction,
				Symmetric:     &sym,
				Timeout:       genTimeout,
			}
			if genSeed != 0 {
				// Distinct per-puzzle seeds: identical seeds would
				// produce n copies of the same puzzle.
				opts.Seed = genSeed + int64(i)
			}

			p, err := gridlock.GenerateWith(genSize, opts)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}
			puzzles[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"size":    genSize,
		"count":   numPuzzles,
		"blank":   blankFraction,
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Debug("generation finished")

	if outputFile != "" {
		filename := outputFile
		if filepath.Ext(filename) != ".html" {
			filename += ".html"
		}
		if err := writeHTML(filename, puzzles); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		log.Infof("Generated %d puzzle(s) in %s", numPuzzles, filename)
		return nil
	}

	for i, p := range puzzles {
		blanks := 0
		for _, row := range p.Clues {
			for _, v := range row {
				if v == 0 {
					blanks++
				}
			}
		}
		fmt.Printf("Puzzle #%d (%dx%d, %d blanks):\n", i+1, p.Size, p.Size, blanks)
		fmt.Println(formatGrid(p.Clues))
		fmt.Println("Solution:")
		fmt.Println(formatGrid(p.Solution))
	}
	return nil
}

// formatGrid renders a grid with box rules, matching the board package's
// human-readable format.
func formatGrid(g gridlock.Grid) string {
	size := len(g)
	shape, err := board.ShapeOf(size)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}

	var sb strings.Builder
	segment := strings.Repeat("-", 2*shape.BoxCols+1)
	segments := make([]string, size/shape.BoxCols)
	for i := range segments {
		segments[i] = segment
	}
	line := "+" + strings.Join(segments, "+") + "+\n"

	sb.WriteString(line)
	for row := 0; row < size; row++ {
		sb.WriteString("| ")
		for col := 0; col < size; col++ {
			if v := g[row][col]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(v))
			}
			sb.WriteByte(' ')
			if (col+1)%shape.BoxCols == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")
		if (row+1)%shape.BoxRows == 0 {
			sb.WriteString(line)
		}
	}
	return sb.String()
}
