package source

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/atomicstack/popup-grep/internal/logging/events"
	"github.com/atomicstack/popup-grep/internal/results"
)

const maxLineBytes = 1024 * 1024

// Event carries one completed group, or the error that ended the scan.
type Event struct {
	Group results.Group
	Err   error
}

// Scanner reads `path:line:text` records (grep -n / rg -n --no-heading
// output) and publishes one group per run of consecutive records sharing a
// path.
type Scanner struct {
	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewScanner starts scanning r on a background goroutine.
func NewScanner(r io.Reader) *Scanner {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scanner{
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}
	s.wg.Add(1)
	go s.run(r)
	go func() {
		s.wg.Wait()
		close(s.events)
	}()
	return s
}

// Events returns the channel of scanned groups. It is closed once the input
// is exhausted or the scanner is stopped.
func (s *Scanner) Events() <-chan Event {
	return s.events
}

// Stop cancels the scanner. A read already blocked on the input is not
// interrupted; no further events are delivered after it returns.
func (s *Scanner) Stop() {
	s.cancel()
}

// Wait blocks until the scanning goroutine has exited.
func (s *Scanner) Wait() {
	s.wg.Wait()
}

func (s *Scanner) run(r io.Reader) {
	defer s.wg.Done()

	emit := func(evt Event) bool {
		select {
		case <-s.ctx.Done():
			return false
		case s.events <- evt:
			return true
		}
	}

	var (
		current *results.Group
		groups  int
	)
	flush := func() bool {
		if current == nil {
			return true
		}
		g := *current
		current = nil
		groups++
		return emit(Event{Group: g})
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		path, item, ok := ParseLine(sc.Text())
		if !ok {
			events.Source.Skip(lineNo, "malformed")
			continue
		}
		if current != nil && current.Name != path {
			if !flush() {
				return
			}
		}
		if current == nil {
			current = &results.Group{Name: path}
		}
		current.Items = append(current.Items, item)
	}
	if !flush() {
		return
	}
	err := sc.Err()
	events.Source.Done(groups, err)
	if err != nil {
		emit(Event{Err: err})
	}
}

// ParseLine splits a `path:line:text` record. The path is everything before
// the first `:<digits>:` separator, so paths containing colons survive.
func ParseLine(raw string) (string, results.Item, bool) {
	line := strings.TrimRight(raw, "\r")
	if line == "" || line == "--" {
		return "", results.Item{}, false
	}
	search := 0
	for {
		idx := strings.IndexByte(line[search:], ':')
		if idx < 0 {
			return "", results.Item{}, false
		}
		sep := search + idx
		rest := line[sep+1:]
		end := strings.IndexByte(rest, ':')
		if sep > 0 && end > 0 {
			if n, err := strconv.Atoi(rest[:end]); err == nil && n >= 0 {
				return line[:sep], results.Item{Line: n, Text: rest[end+1:]}, true
			}
		}
		search = sep + 1
	}
}
