package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"pgol/internal/partition"
	"pgol/internal/world"
)

// OutputMode selects how generations are shown.
type OutputMode int

const (
	// OutputNone runs silently.
	OutputNone OutputMode = iota
	// OutputASCII prints every generation to stderr.
	OutputASCII
	// OutputVisi animates the grid in a window.
	OutputVisi
	// OutputTUI animates the grid in the terminal.
	OutputTUI
)

func (m OutputMode) String() string {
	switch m {
	case OutputNone:
		return "none"
	case OutputASCII:
		return "ascii"
	case OutputVisi:
		return "visi"
	case OutputTUI:
		return "tui"
	default:
		return fmt.Sprintf("OutputMode(%d)", int(m))
	}
}

// ParseOutputMode accepts the mode names and the numeric selectors 0, 1, 2.
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "0":
		return OutputNone, nil
	case "ascii", "text", "1":
		return OutputASCII, nil
	case "visi", "gui", "2":
		return OutputVisi, nil
	case "tui", "terminal":
		return OutputTUI, nil
	}
	return 0, fmt.Errorf("unknown output mode %q", s)
}

// Config represents the command-line parameters for the application.
type Config struct {
	World   string
	Pattern string
	Rows    int
	Cols    int
	Iters   int
	Random  float64
	Seed    int64

	Workers        int
	Partition      string
	Output         string
	PrintPartition bool

	FPS   int
	Scale int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:      32,
		Cols:      32,
		Iters:     100,
		Random:    0.3,
		Seed:      42,
		Workers:   4,
		Partition: "row",
		Output:    "none",
		FPS:       5,
		Scale:     8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.World, "world", c.World, "world file: rows cols iters count, then count row/col pairs")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "named pattern centred on a -rows x -cols grid ("+strings.Join(world.Names(), ", ")+")")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows when no world file is given")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns when no world file is given")
	fs.IntVar(&c.Iters, "iters", c.Iters, "generations to run when no world file is given")
	fs.Float64Var(&c.Random, "random", c.Random, "live-cell density of the random world")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random world")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of worker goroutines")
	fs.StringVar(&c.Partition, "partition", c.Partition, "split the grid by row or column")
	fs.StringVar(&c.Output, "output", c.Output, "output mode: none, ascii, visi or tui (0, 1, 2)")
	fs.BoolVar(&c.PrintPartition, "print-partition", c.PrintPartition, "print each worker's region at startup")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second in animated modes")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier in visi mode")
}

// Modes resolves the partition and output selectors.
func (c *Config) Modes() (partition.Mode, OutputMode, error) {
	pm, err := partition.ParseMode(c.Partition)
	if err != nil {
		return 0, 0, err
	}
	om, err := ParseOutputMode(c.Output)
	if err != nil {
		return 0, 0, err
	}
	if om == OutputVisi && !GUI {
		return 0, 0, errors.New("visi output requires a build with -tags ebiten")
	}
	return pm, om, nil
}

// LoadWorld builds the initial world from the world file, the named pattern
// or the random generator, in that order of preference.
func (c *Config) LoadWorld() (world.World, error) {
	switch {
	case c.World != "":
		return world.Load(c.World)
	case c.Pattern != "":
		p, ok := world.Lookup(c.Pattern)
		if !ok {
			return world.World{}, fmt.Errorf("unknown pattern %q (have %s)", c.Pattern, strings.Join(world.Names(), ", "))
		}
		return p.Centered(c.Rows, c.Cols, c.Iters)
	default:
		return world.Random(c.Rows, c.Cols, c.Iters, c.Random, c.Seed)
	}
}
