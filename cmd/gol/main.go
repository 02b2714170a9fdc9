package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"pgol/internal/app"
	"pgol/internal/core"
	"pgol/internal/engine"
	"pgol/internal/render"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gol: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	pmode, omode, err := cfg.Modes()
	if err != nil {
		log.Fatal(err)
	}
	w, err := cfg.LoadWorld()
	if err != nil {
		log.Fatal(err)
	}
	grid, err := w.Grid()
	if err != nil {
		log.Fatal(err)
	}

	ecfg := engine.Config{
		Workers:    cfg.Workers,
		Mode:       pmode,
		Iterations: w.Iterations,
	}
	if cfg.PrintPartition {
		ecfg.Diagnostics = os.Stdout
	}
	if omode != app.OutputNone {
		ecfg.Pacer = core.NewFixedStep(cfg.FPS)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var (
		surface *render.Surface
		screen  tcell.Screen
	)
	switch omode {
	case app.OutputASCII:
		ecfg.Output = render.NewText(os.Stderr, true)
	case app.OutputVisi:
		surface = render.NewSurface(grid.Rows, grid.Cols)
		ecfg.Output = surface
	case app.OutputTUI:
		screen, err = tcell.NewScreen()
		if err != nil {
			log.Fatalf("creating screen: %v", err)
		}
		if err := screen.Init(); err != nil {
			log.Fatalf("initializing screen: %v", err)
		}
		term := render.NewTerminal(screen, grid.Rows, grid.Cols)
		ecfg.Output = term
		go term.Listen(cancel)
	}

	eng, err := engine.New(grid, ecfg)
	if err != nil {
		if screen != nil {
			screen.Fini()
		}
		log.Fatal(err)
	}

	var (
		res    engine.Result
		runErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		res, runErr = eng.Run(ctx)
	}()

	var windowErr error
	if surface != nil {
		windowErr = app.Run(eng, surface, cfg.Scale, done)
		cancel()
	}
	<-done
	if screen != nil {
		screen.Fini()
	}

	if err := exitError(runErr, windowErr, ctx.Err() != nil); err != nil {
		log.Fatal(err)
	}
	if runErr != nil {
		log.Printf("stopped after %d of %d rounds", res.Generations, w.Iterations)
	}
	fmt.Printf("Total time: %0.3f seconds\n", res.Elapsed.Seconds())
	fmt.Printf("Number of live cells after %d rounds: %d\n\n", res.Generations, res.Live)
}

// exitError returns the failure the process must exit with. A run stopped by
// an interrupt or by closing the window is not a failure; a window that could
// not run is.
func exitError(runErr, windowErr error, interrupted bool) error {
	if windowErr != nil {
		return fmt.Errorf("window: %w", windowErr)
	}
	if runErr != nil && !interrupted {
		return runErr
	}
	return nil
}
