package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway-grid/model"
	"github.com/sheikhrachel/conway-grid/utils"
	"github.com/sheikhrachel/conway-grid/window"
)

const defaultConfigPath = "config.json"

func main() {
	config, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	status := io.Writer(os.Stdout)
	if config.Sink == utils.SinkPlain {
		status = os.Stderr
	}
	if err := runGame(ctx, config, os.Stdin, os.Stdout, status); err != nil {
		log.Fatalf("%+v", err)
	}
}

// parseConfig builds the configuration from defaults, the JSON config file
// and command-line flags, in increasing order of precedence. A missing
// config file at the default path falls back to defaults.
func parseConfig(args []string, output io.Writer) (utils.Config, error) {
	config := utils.DefaultConfig()

	fset := flag.NewFlagSet("conway-grid", flag.ContinueOnError)
	fset.SetOutput(output)
	configPath := fset.String("config", defaultConfigPath, "JSON configuration file")
	config.Bind(fset)
	if err := fset.Parse(args); err != nil {
		return config, err
	}

	explicit := false
	fset.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	loaded, err := utils.LoadConfig(*configPath, utils.DefaultConfig())
	switch {
	case err == nil:
		config = loaded
		// Flags take precedence over the file.
		if err := fset.Parse(args); err != nil {
			return config, err
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return config, err
	}

	return config, config.Validate()
}

// runGame wires loader, engine and sink together for one simulation
func runGame(ctx context.Context, config utils.Config, in io.Reader, out, status io.Writer) error {
	g, err := initializeGame(config, in, out, status)
	if err != nil {
		return err
	}
	g.displayGameInfo()

	generations := 0
	if config.Sink == utils.SinkWindow {
		if err := window.Run(g.grid, config, g.pool); err != nil {
			return errors.Wrap(err, "[runGame] window sink failed")
		}
	} else {
		generations, err = g.run(ctx)
		if err != nil {
			return err
		}
	}

	if ctx.Err() != nil {
		fmt.Fprintln(status, "\n🛑 Shutting down gracefully...")
	}
	fmt.Fprintf(status, "Final stats: %d generations in %.1f seconds, peak population %d\n",
		generations, g.stats.Runtime().Seconds(), g.stats.PeakPopulation)

	if config.OutputPath != "" {
		if err := model.SaveFile(config.OutputPath, g.grid); err != nil {
			return errors.Wrap(err, "[runGame] failed to save final grid")
		}
	}
	return nil
}
