package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/fchimpan/gh-color-switch/internal/audio"
	"github.com/fchimpan/gh-color-switch/internal/game"
	"github.com/fchimpan/gh-color-switch/internal/tui"
)

type memStore map[string]int

func (m memStore) SetInt(key string, v int) { m[key] = v }
func (m memStore) Int(key string) int       { return m[key] }

type closingPlayer struct{ closed bool }

func (p *closingPlayer) Bling() {}
func (p *closingPlayer) Close() { p.closed = true }

func TestRun_Success(t *testing.T) {
	t.Parallel()

	st := memStore{}
	player := &closingPlayer{}
	var calledTUI bool
	var openedPath string

	deps := Deps{
		OpenStore: func(path string) (game.Store, error) {
			openedPath = path
			return st, nil
		},
		DefaultPath: func() (string, error) { return "/config/scores.yml", nil },
		NewPlayer:   func() audio.Player { return player },
		RunTUI: func(ctx context.Context, opts tui.Options, gotStore game.Store, gotPlayer audio.Player) error {
			calledTUI = true
			if opts.Seed != 123 {
				t.Fatalf("seed mismatch: got %d", opts.Seed)
			}
			if opts.Speed != 1.5 {
				t.Fatalf("speed mismatch: got %v", opts.Speed)
			}
			if gotPlayer != player {
				t.Fatalf("unexpected player")
			}
			if player.closed {
				t.Fatalf("player closed before the TUI ran")
			}
			return nil
		},
		IsTerminal: func() bool { return true },
	}

	opts := tui.Options{Seed: 123, Speed: 1.5, Tuning: game.DefaultTuning()}
	if err := run(context.Background(), deps, "", opts); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !calledTUI {
		t.Fatalf("RunTUI not called")
	}
	if openedPath != "/config/scores.yml" {
		t.Fatalf("default path not used: %q", openedPath)
	}
	if !player.closed {
		t.Fatalf("player not closed")
	}
}

func TestRun_ExplicitScoresFile(t *testing.T) {
	t.Parallel()

	var openedPath string
	deps := Deps{
		OpenStore: func(path string) (game.Store, error) {
			openedPath = path
			return memStore{}, nil
		},
		DefaultPath: func() (string, error) {
			t.Fatalf("DefaultPath should not be called when a path is given")
			return "", nil
		},
		RunTUI: func(ctx context.Context, opts tui.Options, st game.Store, p audio.Player) error {
			return nil
		},
		IsTerminal: func() bool { return true },
	}

	if err := run(context.Background(), deps, "/tmp/mine.yml", tui.Options{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if openedPath != "/tmp/mine.yml" {
		t.Fatalf("path mismatch: %q", openedPath)
	}
}

func TestRun_StoreError(t *testing.T) {
	t.Parallel()

	want := errors.New("disk on fire")
	deps := Deps{
		OpenStore: func(path string) (game.Store, error) {
			return nil, want
		},
		DefaultPath: func() (string, error) { return "/config/scores.yml", nil },
		RunTUI: func(ctx context.Context, opts tui.Options, st game.Store, p audio.Player) error {
			t.Fatalf("RunTUI should not be called on store error")
			return nil
		},
		IsTerminal: func() bool { return true },
	}

	err := run(context.Background(), deps, "", tui.Options{})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected wrapped error %v, got %v", want, err)
	}
}

func TestRun_NotATerminal(t *testing.T) {
	t.Parallel()

	deps := Deps{
		OpenStore: func(path string) (game.Store, error) {
			t.Fatalf("OpenStore should not be called without a terminal")
			return nil, nil
		},
		RunTUI: func(ctx context.Context, opts tui.Options, st game.Store, p audio.Player) error {
			t.Fatalf("RunTUI should not be called without a terminal")
			return nil
		},
		IsTerminal: func() bool { return false },
	}

	if err := run(context.Background(), deps, "", tui.Options{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRun_MissingDeps(t *testing.T) {
	t.Parallel()

	if err := run(context.Background(), Deps{}, "", tui.Options{}); err == nil {
		t.Fatalf("expected error for missing deps")
	}
}
