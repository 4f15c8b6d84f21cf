// Command glrr records, inspects, replays and archives call traces.
//
// Usage:
//
//	glrr demo    [-config file] [-o trace.glrr] [-frames n]
//	glrr inspect [-methods] trace.glrr
//	glrr replay  [-config file] [-o frame.png] [-frames n] trace.glrr
//	glrr archive [-config file] list | save FILE | load ID FILE | rm ID
//
// Trace files are either bundles written by demo or raw trace text.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/gogpu/glrr"
	"github.com/gogpu/glrr/config"
)

type command struct {
	name  string
	usage string
	run   func(args []string) error
}

var commands = []command{
	{"demo", "record the built-in scene to a trace bundle", runDemo},
	{"inspect", "summarize a trace", runInspect},
	{"replay", "replay a trace on a host and save the canvas", runReplay},
	{"archive", "manage the trace archive", runArchive},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("glrr: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	name := os.Args[1]
	for _, c := range commands {
		if c.name == name {
			if err := c.run(os.Args[2:]); err != nil {
				log.Fatal(err)
			}
			return
		}
	}
	if name != "help" && name != "-h" && name != "-help" {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", name)
	}
	usage()
	os.Exit(2)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: glrr <command> [flags] [args]")
	fmt.Fprintln(os.Stderr)
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.usage)
	}
}

// loadConfig reads path, or returns the defaults when path is empty, and
// installs a stderr logger at the configured level.
func loadConfig(path string, verbose bool) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	glrr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return cfg, nil
}

// commonFlags adds the flags every command accepts.
func commonFlags(fs *flag.FlagSet) (cfgPath *string, verbose *bool) {
	cfgPath = fs.String("config", "", "TOML or YAML configuration file")
	verbose = fs.Bool("v", false, "log every recorded and replayed call")
	return cfgPath, verbose
}
