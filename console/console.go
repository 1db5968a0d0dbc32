package console

/*
Output sinks for the TLB monitor.

Command results and emulator status messages are written line by line.
Simple writes to any io.Writer, Gui to a gocui view. Gui updates go through
a channel and gocui's Update, so WriteConsole can be called from outside
the gui main loop.
*/

// Console receives monitor output
type Console interface {
	WriteConsole(msg string) error
}
