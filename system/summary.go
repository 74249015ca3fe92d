package system

import (
	"log/slog"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/lixenwraith/dreadmaze/engine"
)

// Summary collects the end-of-session report in a fixed field order
func Summary(w *engine.World) *orderedmap.OrderedMap[string, any] {
	m := orderedmap.NewOrderedMap[string, any]()
	m.Set("phase", w.Phase.Current().String())
	m.Set("cause", w.Phase.Cause())
	m.Set("elapsed", w.Elapsed.String())
	m.Set("frames", w.Frame)
	m.Set("walked", w.Player.Walked)
	m.Set("messages", w.Stats.MessagesShown)
	m.Set("sanity", w.Sanity.Value())
	m.Set("orbs", w.Stats.OrbsCollected)
	m.Set("teleports", w.Stats.Teleports)
	m.Set("caught", w.Stats.Caught)
	return m
}

// LogSummary writes the summary as one structured record
func LogSummary(w *engine.World) {
	m := Summary(w)
	attrs := make([]any, 0, m.Len())
	for el := m.Front(); el != nil; el = el.Next() {
		attrs = append(attrs, slog.Any(el.Key, el.Value))
	}
	w.Logger.Info("session summary", attrs...)
}
