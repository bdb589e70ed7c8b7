package catalog

import (
	"log/slog"
)

// LoadEvent records metadata about a single catalog load.
type LoadEvent struct {
	Source    string
	Term      string
	LatencyMs int64
	Success   bool
	ErrorCode string
	Chairs    int
	Sections  int
	Meets     int
}

// Observer receives events about catalog loads for logging.
type Observer interface {
	OnLoadComplete(event LoadEvent)
}

// LogObserver writes load events to a slog.Logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer backed by logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnLoadComplete(event LoadEvent) {
	attrs := []any{
		"source", event.Source,
		"term", event.Term,
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		o.logger.Warn("catalog_load", append(attrs, "status", "err:"+event.ErrorCode)...)
		return
	}
	o.logger.Info("catalog_load", append(attrs,
		"status", "ok",
		"chairs", event.Chairs,
		"sections", event.Sections,
		"meets", event.Meets,
	)...)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnLoadComplete(LoadEvent) {}

func observerOrNoop(o Observer) Observer {
	if o == nil {
		return NoopObserver{}
	}
	return o
}
