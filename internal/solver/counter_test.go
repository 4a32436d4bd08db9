package solver

import (
	"math/rand"
	"testing"

	"github.com/jswint/gridlock/internal/board"
)

// A classic 9x9 puzzle with exactly one solution.
const uniquePuzzle = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestCountUniquePuzzle(t *testing.T) {
	b, err := board.NewFromString(uniquePuzzle, 9)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}

	c := NewCounter(rand.New(rand.NewSource(1)))
	if got := c.Count(b, UniqueLimit); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
	if !c.IsUnique(b) {
		t.Error("IsUnique = false for a unique puzzle")
	}
}

func TestCountStopsAtLimit(t *testing.T) {
	// Two clues on a 4x4 leave the grid wildly under-constrained; the
	// bounded count must report the cap, not enumerate further.
	b, err := board.NewFromString("1........2......", 4)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}

	c := NewCounter(rand.New(rand.NewSource(1)))
	if got := c.Count(b, 2); got != 2 {
		t.Errorf("Count(limit=2) = %d, want 2", got)
	}
	if got := c.Count(b, 1); got != 1 {
		t.Errorf("Count(limit=1) = %d, want 1", got)
	}

	// An empty board is the extreme of the same case.
	empty := board.MustNew(4)
	if got := c.Count(empty, 2); got != 2 {
		t.Errorf("Count(empty, 2) = %d, want 2", got)
	}
}

func TestCountFullGrids(t *testing.T) {
	full, err := board.NewFromString("1234341221434321", 4)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	c := NewCounter(nil)
	if got := c.Count(full, UniqueLimit); got != 1 {
		t.Errorf("Count(valid full grid) = %d, want 1", got)
	}

	// A full grid with a duplicate has zero solutions.
	bad := board.MustNew(4)
	for pos, ch := range "1234341221434312" {
		bad.SetForce(pos, board.Cell(ch-'0'))
	}
	if got := c.Count(bad, UniqueLimit); got != 0 {
		t.Errorf("Count(invalid full grid) = %d, want 0", got)
	}
}

func TestCountDeadEnd(t *testing.T) {
	// Cell (0,3) admits no value at all, so no completion exists.
	b, err := board.NewFromString("123....4........", 4)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	if got := NewCounter(nil).Count(b, UniqueLimit); got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
}

func TestCountLeavesBoardUntouched(t *testing.T) {
	b, err := board.NewFromString(uniquePuzzle, 9)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	before := b.String()

	NewCounter(rand.New(rand.NewSource(9))).Count(b, UniqueLimit)
	if b.String() != before {
		t.Error("Count mutated its input board")
	}
}

func TestCountAgreesAcrossCandidateOrder(t *testing.T) {
	b, err := board.NewFromString(uniquePuzzle, 9)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}

	deterministic := NewCounter(nil).Count(b, UniqueLimit)
	randomized := NewCounter(rand.New(rand.NewSource(42))).Count(b, UniqueLimit)
	if deterministic != randomized {
		t.Errorf("candidate order changed the result: %d vs %d", deterministic, randomized)
	}
}
