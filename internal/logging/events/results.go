package events

import "github.com/atomicstack/popup-grep/internal/logging"

type ResultsTracer struct{}

var Results = ResultsTracer{}

func (ResultsTracer) Append(group string, items, offset int) {
	logging.Trace("results.append", map[string]interface{}{"group": group, "items": items, "offset": offset})
}

// Cursor records a navigation step and whether it moved the cursor.
func (ResultsTracer) Cursor(move string, cursor int, moved bool) {
	logging.Trace("results.cursor", map[string]interface{}{"move": move, "cursor": cursor, "moved": moved})
}

func (ResultsTracer) Jump(query string, cursor int, moved bool) {
	logging.Trace("results.jump", map[string]interface{}{"query": query, "cursor": cursor, "moved": moved})
}

func (ResultsTracer) Resolve(group string, line int, ok bool) {
	logging.Trace("results.resolve", map[string]interface{}{"group": group, "line": line, "ok": ok})
}

func (ResultsTracer) Viewport(offset, height int) {
	logging.Trace("results.viewport", map[string]interface{}{"offset": offset, "height": height})
}
