package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/catalog"
	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/rules"
	"github.com/sheikhrachel/torus-gol/utils"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	config, variant, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	level, _ := utils.ParseLogLevel(config.LogLevel)
	utils.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	switch {
	case opts.list:
		listPatterns(os.Stdout)
		return 0
	case opts.verify:
		if err = catalog.Verify(context.Background()); err != nil {
			utils.Logger().Error("catalog verification failed", "error", err)
			return 1
		}
		fmt.Println("all patterns ok")
		return 0
	}

	g, err := initializeGame(config, variant)
	if err != nil {
		utils.Logger().Error("could not start game", "error", err)
		return 1
	}

	if opts.steps > 0 {
		g.advance(opts.steps)
		g.renderer.Display(g.grid)
		return g.finish()
	}

	displayGameInfo(g)
	g.play()
	return g.finish()
}

// play runs the timer loop until a stop condition or a signal
func (g *game) play() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(g.config.FrameRate)
	defer ticker.Stop()

	lastFrameTime := time.Now()

	for {
		frameStart := time.Now()
		g.renderer.Clear()

		livingCells, density, status, _ := updateGameState(g, lastFrameTime)
		lastFrameTime = frameStart

		displayGameStatus(g, livingCells, density, status)
		g.renderer.Display(g.grid)

		if stop, reason := checkStopConditions(livingCells, g.stagnantCount, g.sim.Generation(), g.config); stop {
			fmt.Printf("\nStopping: %s\n", reason)
			return
		}

		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			return
		case <-ticker.C:
		}

		g.sim.Step(g.grid, g.variant)
	}
}

type options struct {
	configPath  string
	dimension   int
	variant     string
	pattern     string
	load        string
	save        string
	random      bool
	seed        int64
	generations int
	steps       int
	frameRate   time.Duration
	logLevel    string
	list        bool
	verify      bool

	set map[string]bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("torus-gol", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "config.json", "path to a JSON config file")
	fs.IntVar(&opts.dimension, "dimension", model.DefaultDimension, "side length of the board")
	fs.StringVar(&opts.variant, "variant", rules.Life.String(), "rule variant: life or highlife")
	fs.StringVar(&opts.pattern, "pattern", "", "load a built-in pattern (see -list)")
	fs.StringVar(&opts.load, "load", "", "load a saved game")
	fs.StringVar(&opts.save, "save", "", "save the final board to this path")
	fs.BoolVar(&opts.random, "random", false, "start from a random board")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for -random (default: time based)")
	fs.IntVar(&opts.generations, "generations", 0, "stop after this many generations (0 = unlimited)")
	fs.IntVar(&opts.steps, "step", 0, "advance this many generations, print the board and exit")
	fs.DurationVar(&opts.frameRate, "rate", 0, "delay between generations while playing")
	fs.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&opts.list, "list", false, "list built-in patterns and exit")
	fs.BoolVar(&opts.verify, "verify", false, "check every built-in pattern decodes and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, nil
}

// resolveConfig layers explicit flags over the config file over defaults
func resolveConfig(opts options) (utils.Config, rules.Variant, error) {
	config, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		// only a missing implicit config.json falls back to defaults
		if opts.set["config"] || !errors.Is(err, os.ErrNotExist) {
			return config, rules.Life, err
		}
		config = utils.DefaultConfig()
	}

	if opts.set["dimension"] {
		config.Dimension = opts.dimension
	}
	if opts.set["variant"] {
		config.Variant = opts.variant
	}
	if opts.set["pattern"] {
		config.Pattern = opts.pattern
	}
	if opts.set["load"] {
		config.LoadPath = opts.load
	}
	if opts.set["save"] {
		config.SavePath = opts.save
	}
	if opts.set["random"] {
		config.Random = opts.random
	}
	if opts.set["seed"] {
		config.Seed = opts.seed
	}
	if opts.set["generations"] {
		config.MaxGenerations = opts.generations
	}
	if opts.set["rate"] {
		config.FrameRate = opts.frameRate
	}
	if opts.set["log-level"] {
		config.LogLevel = opts.logLevel
	}

	variant, err := config.Validate()
	return config, variant, err
}
