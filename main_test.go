package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway-grid/utils"
)

const (
	blinkerHorizontal = "0 0 0 \n1 1 1 \n0 0 0 \n"
	blinkerVertical   = "0 1 0 \n0 1 0 \n0 1 0 \n"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func plainConfig(input string) utils.Config {
	cfg := utils.DefaultConfig()
	cfg.InputPath = input
	cfg.Sink = utils.SinkPlain
	cfg.FrameRate = 0
	return cfg
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %+v", err)
	}
	if cfg != utils.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestParseConfigFileAndFlags(t *testing.T) {
	path := writeFile(t, "config.json", `{"width": 20, "height": 10, "sink": "plain"}`)

	cfg, err := parseConfig([]string{"-config", path, "-width", "30"}, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %+v", err)
	}
	if cfg.Width != 30 {
		t.Fatalf("width = %d, flag should override the file", cfg.Width)
	}
	if cfg.Height != 10 || cfg.Sink != utils.SinkPlain {
		t.Fatalf("file values not applied: %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	if _, err := parseConfig([]string{"-config", missing}, io.Discard); err == nil {
		t.Fatal("expected error for an explicit missing config file")
	}
	if _, err := parseConfig([]string{"-sink", "printer"}, io.Discard); err == nil {
		t.Fatal("expected validation error for an unknown sink")
	}
	if _, err := parseConfig([]string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestRunGamePlainSink(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		cfg := plainConfig(writeFile(t, "blinker.txt", "0 0 0\n1 1 1\n0 0 0\n"))
		cfg.MaxGenerations = 2
		cfg.UseParallel = parallel
		cfg.OutputPath = filepath.Join(t.TempDir(), "final.txt")

		var out bytes.Buffer
		if err := runGame(context.Background(), cfg, strings.NewReader(""), &out, io.Discard); err != nil {
			t.Fatalf("parallel=%v: runGame: %+v", parallel, err)
		}

		want := blinkerHorizontal + "\n" + blinkerVertical + "\n" + blinkerHorizontal + "\n"
		if out.String() != want {
			t.Fatalf("parallel=%v: output %q, expected %q", parallel, out.String(), want)
		}

		final, err := os.ReadFile(cfg.OutputPath)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if string(final) != blinkerHorizontal {
			t.Fatalf("parallel=%v: final grid %q, expected %q", parallel, final, blinkerHorizontal)
		}
	}
}

func TestRunGameRejectsBadInput(t *testing.T) {
	cfg := plainConfig(writeFile(t, "bad.txt", "0 1\n1 x\n"))
	err := runGame(context.Background(), cfg, strings.NewReader(""), io.Discard, io.Discard)
	if err == nil || !strings.Contains(err.Error(), `invalid cell token "x"`) {
		t.Fatalf("expected invalid cell token error, got %v", err)
	}
}

func TestInteractiveStopsAtEndOfInput(t *testing.T) {
	cfg := plainConfig(writeFile(t, "blinker.txt", blinkerHorizontal))
	cfg.MaxGenerations = 0
	cfg.Interactive = true

	var out bytes.Buffer
	g, err := initializeGame(cfg, strings.NewReader("\n"), &out, io.Discard)
	if err != nil {
		t.Fatalf("initializeGame: %+v", err)
	}
	generations, err := g.run(context.Background())
	if err != nil {
		t.Fatalf("run: %+v", err)
	}
	if generations != 1 {
		t.Fatalf("ran %d generations, expected 1", generations)
	}
	if want := blinkerHorizontal + "\n" + blinkerVertical + "\n"; out.String() != want {
		t.Fatalf("output %q, expected %q", out.String(), want)
	}
}

func TestStopWhenStagnant(t *testing.T) {
	cfg := plainConfig(writeFile(t, "block.txt", "0 0 0 0\n0 1 1 0\n0 1 1 0\n0 0 0 0\n"))
	cfg.MaxGenerations = 0
	cfg.StopWhenStagnant = true
	cfg.StagnationThreshold = 2

	g, err := initializeGame(cfg, strings.NewReader(""), io.Discard, io.Discard)
	if err != nil {
		t.Fatalf("initializeGame: %+v", err)
	}
	generations, err := g.run(context.Background())
	if err != nil {
		t.Fatalf("run: %+v", err)
	}
	// Three generations fill the history, then two stagnant ones stop the run.
	if generations != 4 {
		t.Fatalf("stopped after %d generations, expected 4", generations)
	}
}

func TestRunStopsWhenCancelled(t *testing.T) {
	cfg := plainConfig(writeFile(t, "blinker.txt", blinkerHorizontal))
	cfg.MaxGenerations = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	g, err := initializeGame(cfg, strings.NewReader(""), &out, io.Discard)
	if err != nil {
		t.Fatalf("initializeGame: %+v", err)
	}
	generations, err := g.run(ctx)
	if err != nil {
		t.Fatalf("run: %+v", err)
	}
	if generations != 0 || out.Len() != 0 {
		t.Fatalf("cancelled run presented %d generations: %q", generations, out.String())
	}
}

func TestSeededGrid(t *testing.T) {
	cfg := plainConfig("")
	cfg.Width = 32
	cfg.Height = 16

	g, err := initializeGame(cfg, strings.NewReader(""), io.Discard, io.Discard)
	if err != nil {
		t.Fatalf("initializeGame: %+v", err)
	}
	if g.grid.GetWidth() != 32 || g.grid.GetHeight() != 16 {
		t.Fatalf("seeded grid is %dx%d", g.grid.GetWidth(), g.grid.GetHeight())
	}
	if g.grid.CountLivingCells() == 0 {
		t.Fatal("seeded grid has no life")
	}
	if g.pool == nil {
		t.Fatal("memory pool enabled but not created")
	}
}
