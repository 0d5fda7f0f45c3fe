package session

import (
	"image"
	"strconv"
	"strings"
	"sync"

	"github.com/youruser/decksheet/internal/sheet"
)

// Defaults and bounds for the configuration surface.
const (
	DefaultRows      = 7
	DefaultCols      = 10
	DefaultCellWidth = 300
	MinCellWidth     = 200
	MaxCellWidth     = 600
)

// Session owns the ordered entry list and the grid configuration. All
// mutation goes through the mutex: the HTTP server is the event source here,
// standing in for a single-threaded UI loop.
type Session struct {
	mu        sync.Mutex
	entries   []Entry
	nextID    uint64
	rows      int
	cols      int
	cellWidth int
}

func New() *Session {
	return &Session{
		nextID:    1,
		rows:      DefaultRows,
		cols:      DefaultCols,
		cellWidth: DefaultCellWidth,
	}
}

// Add appends a decoded image at the end of the list. Its position is the
// list length at insertion, so fresh uploads fill the grid in reading order.
func (s *Session) Add(name string, img image.Image) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := Entry{
		ID:       s.nextID,
		Name:     name,
		Position: len(s.entries),
		Image:    img,
	}
	s.nextID++
	s.entries = append(s.entries, e)
	return e
}

// SetPosition moves an entry to a zero-based grid position. Reports whether
// the id was known. Positions outside the current grid are allowed; the
// composer just omits them until the grid grows.
func (s *Session) SetPosition(id uint64, position int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			if position < 0 {
				position = 0
			}
			s.entries[i].Position = position
			return true
		}
	}
	return false
}

// Remove deletes an entry, preserving the order of the rest.
func (s *Session) Remove(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every entry. Grid configuration is kept.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// AutoArrange reassigns position = list index for every entry in current
// list order, discarding whatever positions they had.
func (s *Session) AutoArrange() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		s.entries[i].Position = i
	}
}

// SetGrid updates the grid shape. Values below 1 fall back to 1.
func (s *Session) SetGrid(rows, cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	s.rows = rows
	s.cols = cols
}

// SetCellWidth clamps the width into [MinCellWidth, MaxCellWidth].
func (s *Session) SetCellWidth(width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width < MinCellWidth {
		width = MinCellWidth
	}
	if width > MaxCellWidth {
		width = MaxCellWidth
	}
	s.cellWidth = width
}

// Layout snapshots the current grid configuration.
func (s *Session) Layout() sheet.Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sheet.Layout{Rows: s.rows, Cols: s.cols, CellWidth: s.cellWidth}
}

// Entries returns a copy of the list in insertion order.
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Placed snapshots the render inputs for the composer, in list order so the
// composer's last-writer-wins rule matches insertion order.
func (s *Session) Placed() []sheet.Placed {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sheet.Placed, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, sheet.Placed{Position: e.Position, Image: e.Image})
	}
	return out
}

// ParsePosition converts the 1-based position field from the interface into
// a zero-based grid position. Empty or non-numeric input means cell 0.
func ParsePosition(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return 0
	}
	return v - 1
}

// ParseDim parses a grid dimension, falling back to 1 on bad input.
func ParseDim(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 {
		return 1
	}
	return v
}

// ParseWidth parses the cell width field, falling back to the default on bad
// input. Range clamping happens in SetCellWidth.
func ParseWidth(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultCellWidth
	}
	return v
}
