package events

import "github.com/atomicstack/popup-grep/internal/logging"

type SourceTracer struct{}

var Source = SourceTracer{}

func (SourceTracer) Skip(lineNo int, reason string) {
	logging.Trace("source.skip", map[string]interface{}{"line": lineNo, "reason": reason})
}

func (SourceTracer) Done(groups int, err error) {
	payload := map[string]interface{}{"groups": groups}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("source.done", payload)
}
