package main

import (
	"flag"
	"io"
	"log/slog"

	"github.com/lixenwraith/duck-hunt/config"
)

// options holds parsed command-line flags
// *Set fields record flags given explicitly, which override the config file
type options struct {
	configPath string
	envFile    string
	logPath    string
	debug      bool
	mute       bool

	bullets    bool
	bulletsSet bool
	seed       uint64
	seedSet    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("duck-hunt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.StringVar(&o.envFile, "env", ".env", "dotenv file with DUCK_HUNT_* overrides")
	fs.StringVar(&o.logPath, "log", "", "log file (default none, "+defaultLogPath+" with -debug)")
	fs.BoolVar(&o.debug, "debug", false, "debug logging")
	fs.BoolVar(&o.mute, "mute", false, "start muted")
	fs.BoolVar(&o.bullets, "bullets", false, "ballistic bullets instead of instant hits")
	fs.Uint64Var(&o.seed, "seed", 0, "spawn random seed, 0 for time-based")

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bullets":
			o.bulletsSet = true
		case "seed":
			o.seedSet = true
		}
	})

	if o.debug && o.logPath == "" {
		o.logPath = defaultLogPath
	}
	return o, nil
}

// apply overlays explicit flags onto a loaded config
func (o options) apply(cfg *config.Config) {
	if o.bulletsSet {
		cfg.BulletsEnabled = o.bullets
	}
	if o.seedSet {
		cfg.Seed = o.seed
	}
}

func (o options) logLevel() slog.Level {
	if o.debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
