// Package analysis is the query facade over the session record store.
// Every operation is a pure function of the store snapshot and may be
// called concurrently.
package analysis

import (
	"github.com/mpapenbr/f1-analysis-go/log"
	"github.com/mpapenbr/f1-analysis-go/pkg/store"
	"github.com/mpapenbr/f1-analysis-go/pkg/timespan"
)

// RaceSession is the session name the race scoped queries filter on
// (exact match).
const RaceSession = "Race"

type Analyzer struct {
	store *store.Store
	log   *log.Logger
}

type Option func(a *Analyzer)

func WithLogger(l *log.Logger) Option {
	return func(a *Analyzer) { a.log = l }
}

func New(s *store.Store, opts ...Option) *Analyzer {
	ret := &Analyzer{store: s, log: log.Default().Named("analysis")}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// spanSeconds adapts a raw duration field to an aggregate extractor result:
// absent values don't contribute, malformed values are reported upwards.
func spanSeconds(raw string) (float64, bool, error) {
	span, err := timespan.Parse(raw)
	if err != nil {
		return 0, false, err
	}
	if !span.Valid() {
		return 0, false, nil
	}
	return span.Seconds(), true, nil
}

func (a *Analyzer) warnSkipped(op string, skipped int) {
	if skipped > 0 {
		a.log.Warn("rows with malformed durations skipped",
			log.String("op", op), log.Int("count", skipped))
	}
}
