package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/cursada/internal/domain"
	"github.com/alexanderramin/cursada/internal/repository"
)

const (
	selectionPrefix = "selection:"
	grayZonesPrefix = "grayzones:"
)

// SelectionKey is the storage key of a term's selection.
func SelectionKey(term string) string { return selectionPrefix + term }

// GrayZonesKey is the storage key of a term's gray zones.
func GrayZonesKey(term string) string { return grayZonesPrefix + term }

type selectionStore struct {
	store    repository.KVStore
	observer UseCaseObserver
}

func NewSelectionStore(store repository.KVStore, observers ...UseCaseObserver) SelectionStore {
	return &selectionStore{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *selectionStore) LoadSelection(ctx context.Context, term string, cat *domain.Catalog) domain.IDSet {
	startedAt := time.Now().UTC()
	fields := map[string]any{"term": term}
	var err error
	defer func() { observe(ctx, s.observer, "load-selection", startedAt, err, fields) }()

	ids := domain.NewIDSet()
	var stored []string
	var malformed int
	stored, malformed, err = readRecords[string](ctx, s.store.KV(), SelectionKey(term))
	if err != nil {
		return ids
	}
	fields["malformed"] = malformed

	practicals := cat.PracticalIDs()
	for _, id := range stored {
		if practicals.Has(id) {
			ids[id] = struct{}{}
		}
	}
	fields["stored"] = len(stored)
	fields["kept"] = len(ids)
	return ids
}

func (s *selectionStore) SaveSelection(ctx context.Context, term string, ids domain.IDSet) {
	startedAt := time.Now().UTC()
	err := writeJSON(ctx, s.store.KV(), SelectionKey(term), ids.Sorted())
	observe(ctx, s.observer, "save-selection", startedAt, err, map[string]any{"term": term, "count": len(ids)})
}

func (s *selectionStore) LoadGrayZones(ctx context.Context, term string) []domain.GrayZone {
	startedAt := time.Now().UTC()
	fields := map[string]any{"term": term}
	var err error
	defer func() { observe(ctx, s.observer, "load-grayzones", startedAt, err, fields) }()

	var stored []domain.GrayZone
	var malformed int
	stored, malformed, err = readRecords[domain.GrayZone](ctx, s.store.KV(), GrayZonesKey(term))
	if err != nil {
		return []domain.GrayZone{}
	}
	fields["malformed"] = malformed
	zones := domain.ValidGrayZones(stored)
	fields["stored"] = len(stored)
	fields["kept"] = len(zones)
	return zones
}

func (s *selectionStore) SaveGrayZones(ctx context.Context, term string, zones []domain.GrayZone) {
	startedAt := time.Now().UTC()
	err := writeJSON(ctx, s.store.KV(), GrayZonesKey(term), nonNilZones(zones))
	observe(ctx, s.observer, "save-grayzones", startedAt, err, map[string]any{"term": term, "count": len(zones)})
}

func (s *selectionStore) SaveAll(ctx context.Context, term string, ids domain.IDSet, zones []domain.GrayZone) {
	startedAt := time.Now().UTC()
	err := s.store.Atomic(ctx, func(ctx context.Context, kv repository.KVRepo) error {
		if err := writeJSON(ctx, kv, SelectionKey(term), ids.Sorted()); err != nil {
			return err
		}
		return writeJSON(ctx, kv, GrayZonesKey(term), nonNilZones(zones))
	})
	observe(ctx, s.observer, "save-all", startedAt, err, map[string]any{
		"term":      term,
		"selected":  len(ids),
		"grayzones": len(zones),
	})
}

func (s *selectionStore) Terms(ctx context.Context) []string {
	startedAt := time.Now().UTC()
	seen := make(map[string]bool)
	var err error
	for _, prefix := range []string{selectionPrefix, grayZonesPrefix} {
		var entries []repository.KVEntry
		entries, err = s.store.KV().List(ctx, prefix)
		if err != nil {
			break
		}
		for _, e := range entries {
			seen[strings.TrimPrefix(e.Key, prefix)] = true
		}
	}
	observe(ctx, s.observer, "list-terms", startedAt, err, map[string]any{"count": len(seen)})

	terms := make([]string, 0, len(seen))
	for t := range seen {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// readRecords decodes the JSON array at key one element at a time. Elements
// that do not decode as T are skipped and counted in malformed. A missing key
// reads as an empty list; a value that is not an array is an error.
func readRecords[T any](ctx context.Context, kv repository.KVRepo, key string) (records []T, malformed int, err error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, 0, nil
		}
		return nil, 0, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", key, err)
	}
	records = make([]T, 0, len(items))
	for _, item := range items {
		var rec T
		if err := json.Unmarshal(item, &rec); err != nil {
			malformed++
			continue
		}
		records = append(records, rec)
	}
	return records, malformed, nil
}

func writeJSON(ctx context.Context, kv repository.KVRepo, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return kv.Put(ctx, key, string(data))
}

func nonNilZones(zones []domain.GrayZone) []domain.GrayZone {
	if zones == nil {
		return []domain.GrayZone{}
	}
	return zones
}
