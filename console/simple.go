package console

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Simple console type definition
type Simple struct {
	mu          sync.Mutex
	w           io.Writer
	currentLine int // counter of written lines
}

// NewSimple returns a console writing to w
func NewSimple(w io.Writer) *Simple {
	return &Simple{w: w}
}

// WriteConsole writes every non empty line of msg
func (c *Simple) WriteConsole(msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			if _, err := fmt.Fprintln(c.w, line); err != nil {
				return err
			}
			c.currentLine++
		}
	}
	return nil
}

// Lines returns the number of lines written so far
func (c *Simple) Lines() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLine
}
