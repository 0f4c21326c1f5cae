// framedump steps a scene headlessly and prints the matrices each object
// would be drawn with.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/affinity/internal/bootstrap"
	"github.com/Faultbox/affinity/internal/config"
	"github.com/Faultbox/affinity/internal/engine/scene"
	"github.com/Faultbox/affinity/internal/logger"
)

var (
	flagFrames = flag.Int("frames", 1, "Number of frames to evaluate")
	flagDT     = flag.Float64("dt", 1.0/60, "Seconds per frame")
	flagFormat = flag.String("format", "text", "Output format: text or yaml")
	flagList   = flag.Bool("list", false, "List available scenes and exit")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = printUsage
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	// stdout carries the dump, so only the log file receives entries.
	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	if *flagList {
		names, err := bootstrap.SceneNames(cfg.Scene)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return 0
	}

	if *flagFrames < 0 || *flagDT < 0 {
		fmt.Fprintln(os.Stderr, "Error: -frames and -dt must not be negative")
		return 1
	}

	d, err := newDumper(os.Stdout, *flagFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cam, err := bootstrap.NewCamera(cfg.Camera, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	s, err := bootstrap.LoadScene(cfg.Scene, cam)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ev := scene.NewEvaluator(s)
	dt := float32(*flagDT) * cfg.Scene.TimeScale
	for i := 0; i < *flagFrames; i++ {
		if err := ev.Evaluate(dt, d); err != nil {
			fmt.Fprintf(os.Stderr, "Error: frame %d: %v\n", i, err)
			return 1
		}
	}
	if err := d.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	st := ev.Stats()
	logger.Info("dump finished",
		zap.String("scene", s.Name),
		zap.Uint64("frames", st.Frames),
		zap.Uint64("submitted", st.Submitted),
	)
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `framedump - evaluate a scene without a window

Usage:
  framedump [options]

Options:`)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, `
Examples:
  framedump -scene default -frames 3 -dt 0.5
  framedump -scene creature -frames 1 -dt 6 -format yaml
  framedump -list`)
}
