package console

import (
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
)

// Gui type definition
type Gui struct {
	consoleOut  chan string // string channel, to which the console data is sent to
	g           *gocui.Gui  // main gocui GUI object
	view        string      // name of the view to write to
	currentLine int         // counter to keep the position of the cursor
}

// NewGui returns a console writing to the named view and starts the
// goroutine feeding it
func NewGui(g *gocui.Gui, view string) *Gui {
	c := &Gui{
		consoleOut: make(chan string, 64),
		g:          g,
		view:       view,
	}
	c.initGui()
	return c
}

// initGui starts forwarding lines to the view
func (c *Gui) initGui() {
	go func() {
		for s := range c.consoleOut {
			s := s
			c.g.Update(func(g *gocui.Gui) error {
				v, err := g.View(c.view)
				if err != nil {
					return err
				}
				fmt.Fprint(v, s)
				return nil
			})
		}
	}()
}

// WriteConsole displays a string on the console
func (c *Gui) WriteConsole(msg string) error {
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			c.consoleOut <- line + "\n"
			c.currentLine++
		}
	}
	return nil
}
