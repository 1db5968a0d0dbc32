package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/jroimartin/gocui"
	"github.com/tebeka/atexit"

	"sh4/console"
	"sh4/logger"
	"sh4/mmu"
	"sh4/monitor"
	"sh4/system"
)

var (
	logFile    = flag.String("log", "", "log file, stdout when empty")
	scriptFile = flag.String("script", "", "TLB script to load")
	full       = flag.Bool("full", true, "full MMU emulation")
	httpAddr   = flag.String("http", "", "serve the TLB inspector on this address")
	memSize    = flag.Int("mem", 16<<20, "RAM size in bytes, power of 2")
	batch      = flag.Bool("batch", false, "run the script without the gui")
)

func main() {
	flag.Parse()

	// the gui owns the terminal, log elsewhere unless asked
	path := *logFile
	if path == "" && !*batch {
		path = os.DevNull
	}
	l, closer, err := logger.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	atexit.Register(func() { closer.Close() })

	sys, err := system.New(mmu.Config{Full: *full, Logger: l}, *memSize, l)
	if err != nil {
		log.Fatal(err)
	}

	var script []monitor.Command
	if *scriptFile != "" {
		f, err := os.Open(*scriptFile)
		if err != nil {
			log.Fatal(err)
		}
		script, err = monitor.Parse(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}

	if *batch {
		runBatch(sys, script)
		atexit.Exit(0)
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln("Couldn't create gui!")
	}
	atexit.Register(g.Close)

	out := console.NewGui(g, "status")
	mon := monitor.New(sys, out)
	mon.Load(script)

	if *httpAddr != "" {
		go func() {
			l.Println(http.ListenAndServe(*httpAddr, mon.Handler()))
		}()
	}

	g.SetManagerFunc(layout)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}
	if err := g.SetKeybinding("", gocui.KeySpace, gocui.ModNone, step(mon, out)); err != nil {
		log.Panicln(err)
	}
	if err := g.SetKeybinding("", 'r', gocui.ModNone, runAll(mon, out)); err != nil {
		log.Panicln(err)
	}

	g.Update(func(g *gocui.Gui) error {
		out.WriteConsole(fmt.Sprintf("%d commands loaded, space steps, r runs, ctrl-c quits", len(script)))
		return refresh(g, mon)
	})

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	atexit.Exit(0)
}

// runBatch executes the whole script on stdout and dumps the TLBs
func runBatch(sys *system.System, script []monitor.Command) {
	mon := monitor.New(sys, console.NewSimple(os.Stdout))
	mon.Load(script)
	if err := mon.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	mon.DumpUTLB(os.Stdout, false)
	mon.DumpITLB(os.Stdout)
	mon.DumpRegisters(os.Stdout)
}

func step(mon *monitor.Monitor, out console.Console) func(*gocui.Gui, *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		more, err := mon.Step()
		if err != nil {
			out.WriteConsole(err.Error())
		} else if !more {
			out.WriteConsole("end of script")
		}
		return refresh(g, mon)
	}
}

func runAll(mon *monitor.Monitor, out console.Console) func(*gocui.Gui, *gocui.View) error {
	return func(g *gocui.Gui, v *gocui.View) error {
		if err := mon.Run(); err != nil {
			out.WriteConsole(err.Error())
		}
		return refresh(g, mon)
	}
}

// refresh redraws the TLB and register views.
// has to run in the gui goroutine, keybinding handlers or Update
func refresh(g *gocui.Gui, mon *monitor.Monitor) error {
	var b bytes.Buffer
	mon.DumpUTLB(&b, false)
	if err := setView(g, "utlb", b.String()); err != nil {
		return err
	}

	b.Reset()
	mon.DumpITLB(&b)
	if err := setView(g, "itlb", b.String()); err != nil {
		return err
	}

	b.Reset()
	mon.DumpRegisters(&b)
	return setView(g, "registers", b.String())
}

func setView(g *gocui.Gui, name, content string) error {
	v, err := g.View(name)
	if err != nil {
		return err
	}
	v.Clear()
	fmt.Fprint(v, content)
	return nil
}

// gocui layout
func layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// left -> UTLB
	if v, err := g.SetView("utlb", 0, 0, maxX/2-1, maxY-18); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "UTLB"
	}

	// right -> ITLB
	if v, err := g.SetView("itlb", maxX/2, 0, maxX-1, maxY-18); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "ITLB"
	}

	// middle -> register values
	if v, err := g.SetView("registers", 0, maxY-17, maxX-1, maxY-14); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Registers"
	}
	// down -> status
	if v, err := g.SetView("status", 0, maxY-13, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Autoscroll = true
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
