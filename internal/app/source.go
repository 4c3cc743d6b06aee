package app

import (
	"context"
	"fmt"
	"os"

	"github.com/jwulff/sdpview/internal/db"
)

// Source supplies the session description text shown by the TUI.
type Source interface {
	// Name labels the source in the header.
	Name() string
	// Read returns the current text. It is called again on reload.
	Read(ctx context.Context) (string, error)
}

// FileSource reads a file from disk on every load.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Path, err)
	}
	return string(data), nil
}

// StaticSource serves text captured once, such as piped stdin.
type StaticSource struct {
	Label string
	Text  string
}

func (s StaticSource) Name() string { return s.Label }

func (s StaticSource) Read(ctx context.Context) (string, error) { return s.Text, nil }

// StoreSource reads a captured description. An empty ID follows the latest
// capture, so reload picks up new captures.
type StoreSource struct {
	Store *db.Store
	ID    string
}

func (s StoreSource) Name() string {
	if s.ID == "" {
		return "capture db (latest)"
	}
	return "capture " + s.ID
}

func (s StoreSource) Read(ctx context.Context) (string, error) {
	var (
		d   *db.Description
		err error
	)
	if s.ID == "" {
		d, err = s.Store.Latest()
	} else {
		d, err = s.Store.Get(s.ID)
	}
	if err != nil {
		return "", err
	}
	return d.SDP, nil
}
