package gridlock

import (
	"testing"
)

func TestGenerateSizes(t *testing.T) {
	for _, size := range []int{4, 6, 9} {
		p, err := GenerateSeeded(size, 321)
		if err != nil {
			t.Fatalf("Generate(%d) failed: %v", size, err)
		}
		if p.ID == "" {
			t.Error("puzzle has no ID")
		}
		if p.Size != size || len(p.Clues) != size || len(p.Solution) != size {
			t.Fatalf("wrong dimensions for size %d", size)
		}

		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				sol := p.Solution[row][col]
				if sol < 1 || sol > size {
					t.Fatalf("solution cell (%d,%d) = %d out of range", row, col, sol)
				}
				if c := p.Clues[row][col]; c != 0 && c != sol {
					t.Fatalf("clue (%d,%d) = %d disagrees with solution %d", row, col, c, sol)
				}
			}
		}

		unique, err := CheckUnique(p.Clues)
		if err != nil {
			t.Fatalf("CheckUnique failed: %v", err)
		}
		if !unique {
			t.Fatalf("generated %dx%d puzzle is not unique", size, size)
		}
	}
}

func TestGenerateRejectsBadSize(t *testing.T) {
	if _, err := Generate(5); err == nil {
		t.Fatal("Generate(5) succeeded, want error")
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	a, err := GenerateSeeded(9, 77)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := GenerateSeeded(9, 77)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for row := range a.Clues {
		for col := range a.Clues[row] {
			if a.Clues[row][col] != b.Clues[row][col] {
				t.Fatalf("same seed differs at (%d,%d)", row, col)
			}
		}
	}
	if a.ID == b.ID {
		t.Error("distinct puzzles share an ID")
	}
}

func TestCheckUnique(t *testing.T) {
	// Two clues on a 4x4 cannot pin down a solution.
	ambiguous := Grid{
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 0},
	}
	unique, err := CheckUnique(ambiguous)
	if err != nil {
		t.Fatalf("CheckUnique failed: %v", err)
	}
	if unique {
		t.Error("under-constrained grid reported unique")
	}

	// A grid that breaks the rules outright is not a fair puzzle,
	// but not an error either.
	conflicted := Grid{
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	unique, err = CheckUnique(conflicted)
	if err != nil {
		t.Fatalf("CheckUnique failed: %v", err)
	}
	if unique {
		t.Error("rule-violating grid reported unique")
	}

	// A fully solved grid is its own unique solution.
	solved := Grid{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	unique, err = CheckUnique(solved)
	if err != nil {
		t.Fatalf("CheckUnique failed: %v", err)
	}
	if !unique {
		t.Error("solved grid reported not unique")
	}
}

func TestCheckUniqueRejectsMalformedGrids(t *testing.T) {
	if _, err := CheckUnique(Grid{{1, 0}, {0, 1}}); err == nil {
		t.Error("expected error for unsupported size")
	}

	ragged := Grid{
		{0, 0, 0, 0},
		{0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if _, err := CheckUnique(ragged); err == nil {
		t.Error("expected error for ragged rows")
	}

	outOfRange := Grid{
		{7, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	if _, err := CheckUnique(outOfRange); err == nil {
		t.Error("expected error for out-of-range value")
	}
}

func TestGenerateAll(t *testing.T) {
	puzzles, err := GenerateAll(4, 6, 9)
	if err != nil {
		t.Fatalf("GenerateAll failed: %v", err)
	}
	if len(puzzles) != 3 {
		t.Fatalf("got %d puzzles, want 3", len(puzzles))
	}
	for size, p := range puzzles {
		if p.Size != size {
			t.Errorf("puzzle under key %d has size %d", size, p.Size)
		}
		unique, err := CheckUnique(p.Clues)
		if err != nil || !unique {
			t.Errorf("size %d puzzle not unique (err=%v)", size, err)
		}
	}

	if _, err := GenerateAll(4, 5); err == nil {
		t.Error("GenerateAll with a bad size succeeded, want error")
	}
}

func TestSession(t *testing.T) {
	p, err := GenerateSeeded(4, 11)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	s := NewSession(p)

	if s.HintsRemaining() != DefaultHintBudget {
		t.Fatalf("HintsRemaining = %d, want %d", s.HintsRemaining(), DefaultHintBudget)
	}

	// Locate one blank and one clue cell.
	blankRow, blankCol := -1, -1
	clueRow, clueCol := -1, -1
	for row := range p.Clues {
		for col := range p.Clues[row] {
			if p.Clues[row][col] == 0 {
				blankRow, blankCol = row, col
			} else {
				clueRow, clueCol = row, col
			}
		}
	}
	if blankRow == -1 || clueRow == -1 {
		t.Fatal("puzzle has no blanks or no clues")
	}

	val, ok := s.Hint(blankRow, blankCol)
	if !ok || val != p.Solution[blankRow][blankCol] {
		t.Fatalf("Hint = (%d, %v), want solution value %d", val, ok, p.Solution[blankRow][blankCol])
	}
	if s.HintsRemaining() != DefaultHintBudget-1 {
		t.Errorf("hint did not spend budget: %d remaining", s.HintsRemaining())
	}

	if _, ok := s.Hint(clueRow, clueCol); ok {
		t.Error("Hint revealed an already-filled clue cell")
	}
	if _, ok := s.Hint(-1, 0); ok {
		t.Error("Hint accepted out-of-bounds coordinates")
	}
	if s.HintsRemaining() != DefaultHintBudget-1 {
		t.Error("rejected hints still spent budget")
	}

	for s.HintsRemaining() > 0 {
		s.Hint(blankRow, blankCol)
	}
	if _, ok := s.Hint(blankRow, blankCol); ok {
		t.Error("Hint succeeded with an exhausted budget")
	}

	if !s.Check(blankRow, blankCol, p.Solution[blankRow][blankCol]) {
		t.Error("Check rejected the correct value")
	}
	wrong := p.Solution[blankRow][blankCol]%4 + 1
	if wrong != p.Solution[blankRow][blankCol] && s.Check(blankRow, blankCol, wrong) {
		t.Error("Check accepted a wrong value")
	}
}
