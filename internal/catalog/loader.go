// Package catalog fetches a term's published data files and assembles them
// into a domain.Catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cursada/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Published data file names, relative to a term directory.
const (
	FileChairs   = "catedras.json"
	FileSections = "sections.json"
	FileMeets    = "meets.json"
)

// Files lists the data files of a term in load order.
var Files = []string{FileChairs, FileSections, FileMeets}

// IsDataFile reports whether name is one of the published data files.
func IsDataFile(name string) bool {
	for _, f := range Files {
		if f == name {
			return true
		}
	}
	return false
}

// Loader fetches the catalog of a term. Implementations fail the whole load
// if any file fails; there are no partial catalogs.
type Loader interface {
	Load(ctx context.Context, term string) (*domain.Catalog, error)
}

// fetchFunc returns the raw bytes of one data file of a term.
type fetchFunc func(ctx context.Context, term, file string) ([]byte, error)

// loadAll fetches the three data files concurrently and decodes them. The
// first failure cancels the remaining fetches.
func loadAll(ctx context.Context, source, term string, fetch fetchFunc, obs Observer) (cat *domain.Catalog, err error) {
	start := time.Now()
	defer func() {
		ev := LoadEvent{
			Source:    source,
			Term:      term,
			LatencyMs: time.Since(start).Milliseconds(),
			Success:   err == nil,
			ErrorCode: errorCode(err),
		}
		if cat != nil {
			ev.Chairs, ev.Sections, ev.Meets = len(cat.Chairs), len(cat.Sections), len(cat.Meets)
		}
		obs.OnLoadComplete(ev)
	}()

	if err := ValidateTerm(term); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	var (
		chairs   []domain.Catedra
		sections []domain.Section
		meets    []domain.Meet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return fetchInto(gctx, fetch, term, FileChairs, &chairs) })
	g.Go(func() error { return fetchInto(gctx, fetch, term, FileSections, &sections) })
	g.Go(func() error { return fetchInto(gctx, fetch, term, FileMeets, &meets) })
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrDataUnavailable, ErrTimeout, ctx.Err())
		}
		return nil, err
	}

	return &domain.Catalog{Term: term, Chairs: chairs, Sections: sections, Meets: meets}, nil
}

func fetchInto[T any](ctx context.Context, fetch fetchFunc, term, file string, dst *[]T) error {
	data, err := fetch(ctx, term, file)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDataUnavailable, file, err)
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("%w: %w: %s: %w", ErrDataUnavailable, ErrInvalidData, file, err)
	}
	*dst = out
	return nil
}

// ValidateTerm rejects terms that could not name a single directory.
func ValidateTerm(term string) error {
	if term == "" || term == "." || term == ".." || strings.ContainsAny(term, "/\\\x00") {
		return fmt.Errorf("%w %q", ErrInvalidTerm, term)
	}
	return nil
}
