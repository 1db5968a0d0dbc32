package system

import (
	"errors"

	"sh4/interrupts"
)

// ErrHistoryEmpty is returned by Oldest on an empty history
var ErrHistoryEmpty = errors.New("exception history is empty")

// History keeps the most recently delivered exceptions, oldest first.
// When full, adding drops the oldest entry.
type History struct {
	items   []interrupts.Exception
	maxSize int
}

// NewHistory returns an empty history of at most maxSize exceptions
func NewHistory(maxSize int) *History {
	return &History{maxSize: maxSize}
}

// Add appends an exception
func (h *History) Add(ex interrupts.Exception) {
	if h.maxSize <= 0 {
		return
	}
	if len(h.items) == h.maxSize {
		h.items = h.items[1:]
	}
	h.items = append(h.items, ex)
}

// Oldest removes and returns the oldest exception
func (h *History) Oldest() (interrupts.Exception, error) {
	if len(h.items) == 0 {
		return interrupts.Exception{}, ErrHistoryEmpty
	}
	ex := h.items[0]
	h.items = h.items[1:]
	return ex, nil
}

// Len returns the number of kept exceptions
func (h *History) Len() int { return len(h.items) }

// Items returns a copy of kept exceptions, oldest first
func (h *History) Items() []interrupts.Exception {
	return append([]interrupts.Exception(nil), h.items...)
}

// Clear drops all exceptions
func (h *History) Clear() { h.items = nil }
