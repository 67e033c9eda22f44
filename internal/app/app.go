package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/popup-grep/internal/logging/events"
	"github.com/atomicstack/popup-grep/internal/results"
	"github.com/atomicstack/popup-grep/internal/source"
)

// ErrNoSelection reports that the results resolved to no selected item.
var ErrNoSelection = errors.New("no selection")

// Config describes user-provided application options.
type Config struct {
	InputPath string
	Moves     string
	Verbose   bool
	// Height is the number of rows a renderer would show; 0 disables
	// viewport tracking.
	Height int
}

// Run loads grouped results from cfg.InputPath (or stdin), applies the
// navigation script and writes the resolved selection to out.
func Run(cfg Config, stdin io.Reader, out io.Writer) error {
	in := stdin
	if cfg.InputPath != "" && cfg.InputPath != "-" {
		f, err := os.Open(cfg.InputPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	moves, err := ParseMoves(cfg.Moves)
	if err != nil {
		return fmt.Errorf("parse moves: %w", err)
	}
	events.App.Moves(cfg.Moves, len(moves))

	list := results.NewList()
	if err := Load(list, source.NewScanner(in)); err != nil {
		return err
	}
	Navigate(list, moves, cfg.Height)

	g, item, ok := list.SelectedItem()
	events.Results.Resolve(g.Name, item.Line, ok)
	if !ok {
		return ErrNoSelection
	}
	if cfg.Verbose {
		_, err = fmt.Fprintf(out, "%s:%d:%s\n", g.Name, item.Line, item.Text)
	} else {
		_, err = fmt.Fprintf(out, "%s:%d\n", g.Name, item.Line)
	}
	if err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	return nil
}

// Load appends every group the scanner publishes, in order, on the calling
// goroutine.
func Load(list *results.List, scanner *source.Scanner) error {
	defer scanner.Stop()
	for evt := range scanner.Events() {
		if evt.Err != nil {
			return fmt.Errorf("read results: %w", evt.Err)
		}
		offset := list.Len()
		list.AppendGroup(evt.Group)
		events.Results.Append(evt.Group.Name, len(evt.Group.Items), offset)
	}
	return nil
}

// Navigate applies moves to list in order and returns the viewport offset
// that keeps the cursor within height rows after the last move.
func Navigate(list *results.List, moves []Move, height int) int {
	offset := list.EnsureCursorVisible(height, 0)
	for _, m := range moves {
		moved := m.Apply(list)
		offset = list.EnsureCursorVisible(height, offset)
		cursor, _ := list.Cursor()
		if m.Kind == MoveJump {
			events.Results.Jump(m.Query, cursor, moved)
		} else {
			events.Results.Cursor(m.Kind.String(), cursor, moved)
		}
		events.Results.Viewport(offset, height)
	}
	return offset
}
