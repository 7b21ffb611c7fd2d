// Command ls-orrery renders a procedurally generated star system as a
// shaded terminal scene.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-orrery/internal/logging"
	"github.com/litescript/ls-orrery/internal/scene"
	"github.com/litescript/ls-orrery/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode bool
	frameMode   bool
	frameWidth  int
	frameHeight int
	frameTime   float64
)

const (
	defaultFPS = 30
	minFPS     = 1
	maxFPS     = 120
)

func main() {
	seed := flag.Int64("seed", 0, "Master seed (0 = derive from current time)")
	fps := flag.Int("fps", defaultFPS, "Target frames per second")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print a system inventory instead of the TUI")
	flag.BoolVar(&frameMode, "frame", false, "Render a single frame to stdout and exit")
	flag.IntVar(&frameWidth, "width", 120, "Frame width in cells (with -frame)")
	flag.IntVar(&frameHeight, "height", 40, "Frame height in cells (with -frame)")
	flag.Float64Var(&frameTime, "t", 0, "Sim time in seconds (with -frame)")
	flag.Parse()

	if *fps < minFPS {
		*fps = minFPS
	} else if *fps > maxFPS {
		*fps = maxFPS
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	genLog := logger.WithPrefix("scene")
	genLog.Debug("Generating system for seed %d", *seed)
	sys := scene.Generate(*seed)
	genLog.Info("System %s: %d planets, seed %d", sys.Name, len(sys.Planets), *seed)

	if summaryMode || frameMode {
		runHeadless(sys)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal; use -frame or -summary for non-interactive output")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	model := ui.New(sys, *fps)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles one-shot output modes without starting the TUI.
func runHeadless(sys *scene.System) {
	if summaryMode {
		scene.WriteSummary(os.Stdout, sys)
	}

	if frameMode {
		m := ui.NewOrreryModel()
		m = m.SetSize(frameWidth, frameHeight)
		m = m.UpdateFrame(sys, frameTime)
		fmt.Println(m.View())
	}
}
