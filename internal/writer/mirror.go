// internal/writer/mirror.go
package writer

import (
	"context"
	"log"

	"github.com/tamzrod/pressure-regulator/internal/status"
)

// Mirror delivers snapshots to a StatusWriter from its own goroutine.
// Publish never blocks: an undelivered snapshot is replaced by the newer one.
type Mirror struct {
	w    StatusWriter
	name string
	ch   chan status.Snapshot
}

func NewMirror(w StatusWriter, name string) *Mirror {
	return &Mirror{
		w:    w,
		name: name,
		ch:   make(chan status.Snapshot, 1),
	}
}

// Publish queues s, dropping any snapshot still waiting.
// A nil Mirror discards everything.
func (m *Mirror) Publish(s status.Snapshot) {
	if m == nil {
		return
	}

	for {
		select {
		case m.ch <- s:
			return
		default:
		}
		select {
		case <-m.ch:
		default:
		}
	}
}

// Run writes queued snapshots until ctx is done.
func (m *Mirror) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-m.ch:
			if err := m.w.WriteStatus(s); err != nil {
				log.Printf("status write failed (name=%s): %v", m.name, err)
			}
		}
	}
}
