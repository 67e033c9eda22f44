package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/popup-grep/internal/results"
)

// MoveKind names one navigation step.
type MoveKind int

const (
	MoveNext MoveKind = iota
	MovePrevious
	MoveFirst
	MoveLast
	MoveNextGroup
	MovePreviousGroup
	MoveJump
)

var moveNames = map[string]MoveKind{
	"n":          MoveNext,
	"next":       MoveNext,
	"p":          MovePrevious,
	"prev":       MovePrevious,
	"previous":   MovePrevious,
	"first":      MoveFirst,
	"home":       MoveFirst,
	"last":       MoveLast,
	"end":        MoveLast,
	"N":          MoveNextGroup,
	"next-group": MoveNextGroup,
	"P":          MovePreviousGroup,
	"prev-group": MovePreviousGroup,
}

func (k MoveKind) String() string {
	switch k {
	case MoveNext:
		return "next"
	case MovePrevious:
		return "previous"
	case MoveFirst:
		return "first"
	case MoveLast:
		return "last"
	case MoveNextGroup:
		return "next-group"
	case MovePreviousGroup:
		return "prev-group"
	case MoveJump:
		return "jump"
	}
	return fmt.Sprintf("MoveKind(%d)", int(k))
}

// Move is a single step of a navigation script.
type Move struct {
	Kind  MoveKind
	Query string
	Count int
}

// ParseMoves parses a comma separated navigation script such as
// "n*3,p,/main.go,last". Tokens may carry a `*count` repeat suffix; `/query`
// jumps to the best matching group.
func ParseMoves(script string) ([]Move, error) {
	if strings.TrimSpace(script) == "" {
		return nil, nil
	}
	var moves []Move
	for _, raw := range strings.Split(script, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if strings.HasPrefix(token, "/") {
			query := strings.TrimSpace(token[1:])
			if query == "" {
				return nil, fmt.Errorf("empty jump query in %q", raw)
			}
			moves = append(moves, Move{Kind: MoveJump, Query: query, Count: 1})
			continue
		}
		count := 1
		if idx := strings.LastIndexByte(token, '*'); idx >= 0 {
			n, err := strconv.Atoi(token[idx+1:])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid repeat count in %q", token)
			}
			count = n
			token = token[:idx]
		}
		kind, ok := moveNames[token]
		if !ok {
			kind, ok = moveNames[strings.ToLower(token)]
		}
		if !ok {
			return nil, fmt.Errorf("unknown move %q", token)
		}
		moves = append(moves, Move{Kind: kind, Count: count})
	}
	return moves, nil
}

// Apply performs the move on list and reports whether the cursor moved.
func (m Move) Apply(list *results.List) bool {
	moved := false
	for i := 0; i < m.Count; i++ {
		var step bool
		switch m.Kind {
		case MoveNext:
			step = list.Next()
		case MovePrevious:
			step = list.Previous()
		case MoveFirst:
			step = list.First()
		case MoveLast:
			step = list.Last()
		case MoveNextGroup:
			step = list.NextGroup()
		case MovePreviousGroup:
			step = list.PreviousGroup()
		case MoveJump:
			step = list.JumpToGroup(m.Query)
		}
		if !step {
			break
		}
		moved = true
	}
	return moved
}
