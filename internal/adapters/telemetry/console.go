package telemetry

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*ConsoleWriter)(nil)

// ConsoleWriter renders Progrock status updates as plain lines on a
// writer: vertex log data is streamed through as is, and every vertex
// is reported once when it completes.
type ConsoleWriter struct {
	mu   sync.Mutex
	out  io.Writer
	done map[string]bool
}

// NewConsoleWriter creates a ConsoleWriter emitting to out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		out:  out,
		done: make(map[string]bool),
	}
}

// WriteStatus implements progrock.Writer.
func (w *ConsoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, log := range update.Logs {
		if _, err := w.out.Write(log.Data); err != nil {
			return err
		}
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil || w.done[v.Id] {
			continue
		}
		w.done[v.Id] = true

		var err error
		switch {
		case v.Error != nil:
			_, err = fmt.Fprintf(w.out, "✗ %s: %s\n", v.Name, v.GetError())
		case v.Cached:
			_, err = fmt.Fprintf(w.out, "= %s (cached)\n", v.Name)
		default:
			_, err = fmt.Fprintf(w.out, "✓ %s\n", v.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Close implements progrock.Writer.
func (w *ConsoleWriter) Close() error { return nil }
