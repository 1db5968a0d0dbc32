package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Command is a single parsed script line
type Command struct {
	Line int
	Name string
	Args []uint64
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, a := range c.Args {
		fmt.Fprintf(&b, " %#x", a)
	}
	return b.String()
}

// argument count and the bit size of every argument, per command
var commands = map[string][]int{
	"utlb":       {6, 32, 32},
	"ldtlb":      {},
	"pteh":       {32},
	"ptel":       {32},
	"mmucr":      {32},
	"qacr":       {1, 32},
	"md":         {1},
	"vbr":        {32},
	"invalidate": {},
	"reset":      {},
	"rte":        {},
	"r8":         {32},
	"r16":        {32},
	"r32":        {32},
	"r64":        {32},
	"w8":         {32, 8},
	"w16":        {32, 16},
	"w32":        {32, 32},
	"w64":        {32, 64},
	"fetch":      {32},
	"sqw":        {32},
	"pref":       {32},
}

// ErrEmptyScript is returned for scripts without any command
var ErrEmptyScript = errors.New("script has no commands")

// Parse reads a script: one command per line, '#' starts a comment.
// Numbers are in Go syntax, 0x prefix for hex.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		cmd, err := parseCommand(line, fields)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(cmds) == 0 {
		return nil, ErrEmptyScript
	}
	return cmds, nil
}

func parseCommand(line int, fields []string) (Command, error) {
	name := strings.ToLower(fields[0])
	sizes, ok := commands[name]
	if !ok {
		return Command{}, fmt.Errorf("line %d: unknown command %q", line, fields[0])
	}
	args := fields[1:]
	if len(args) != len(sizes) {
		return Command{}, fmt.Errorf("line %d: %s takes %d arguments, got %d", line, name, len(sizes), len(args))
	}
	cmd := Command{Line: line, Name: name, Args: make([]uint64, len(args))}
	for i, a := range args {
		v, err := strconv.ParseUint(a, 0, sizes[i])
		if err != nil {
			return Command{}, fmt.Errorf("line %d: %s argument %d: %w", line, name, i+1, err)
		}
		cmd.Args[i] = v
	}
	return cmd, nil
}
