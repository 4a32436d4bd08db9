package gridlock

// DefaultHintBudget is the number of hints a fresh session starts with.
const DefaultHintBudget = 3

// Session holds the per-puzzle state a host application plays against:
// the puzzle itself plus the remaining hint budget. One Session exists
// per active puzzle; nothing here is shared between sessions, so
// concurrent sessions need no coordination.
type Session struct {
	Puzzle    *Puzzle
	hintsLeft int
}

// NewSession starts a session over a generated puzzle with the default
// hint budget.
func NewSession(p *Puzzle) *Session {
	return &Session{Puzzle: p, hintsLeft: DefaultHintBudget}
}

// HintsRemaining returns how many hints the session has left.
func (s *Session) HintsRemaining() int { return s.hintsLeft }

// Hint reveals the solution value of the given blank clue cell and
// spends one hint. It returns ok=false without spending anything when
// the budget is exhausted, the coordinates are out of bounds, or the
// cell is already a clue.
func (s *Session) Hint(row, col int) (val int, ok bool) {
	if s.hintsLeft <= 0 || !s.inBounds(row, col) {
		return 0, false
	}
	if s.Puzzle.Clues[row][col] != 0 {
		return 0, false
	}
	s.hintsLeft--
	return s.Puzzle.Solution[row][col], true
}

// Check reports whether val is the solution value for the given cell.
func (s *Session) Check(row, col, val int) bool {
	return s.inBounds(row, col) && s.Puzzle.Solution[row][col] == val
}

func (s *Session) inBounds(row, col int) bool {
	return row >= 0 && row < s.Puzzle.Size && col >= 0 && col < s.Puzzle.Size
}
