package search

import "hillclimb/internal/terrain"

// frame holds the candidates not yet tried at one depth. Candidates are
// taken from the end.
type frame []terrain.Cell

func newFrame(cells [4]terrain.Cell) frame {
	f := make(frame, len(cells))
	copy(f, cells[:])
	return f
}

func (f *frame) pop() terrain.Cell {
	old := *f
	c := old[len(old)-1]
	*f = old[:len(old)-1]
	return c
}

func (f frame) empty() bool {
	return len(f) == 0
}

// frameStack has one frame per cell of the walker's path while a search is
// running.
type frameStack []frame

func (s *frameStack) push(f frame) {
	*s = append(*s, f)
}

func (s *frameStack) pop() {
	*s = (*s)[:len(*s)-1]
}

func (s frameStack) top() *frame {
	if len(s) == 0 {
		return nil
	}
	return &s[len(s)-1]
}
