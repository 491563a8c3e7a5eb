package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/HuyNLy/Little-Lemon-App/entity"
	"github.com/HuyNLy/Little-Lemon-App/repository"
)

// LoadState is the explicit lifecycle of the one-shot menu load.
type LoadState string

const (
	StateIdle    LoadState = "idle"
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateFailed  LoadState = "failed"
)

// MenuService holds the current item set and its load state. A successful
// refresh replaces the set and best-effort rewrites the cache; a failed one
// falls back to cached rows when any exist. Overlapping refreshes are
// last-write-wins.
type MenuService struct {
	fetcher *FetchService
	repo    *repository.MenuRepository

	mu      sync.Mutex
	state   LoadState
	items   []entity.MenuItem
	lastErr error
}

func NewMenuService(fetcher *FetchService, repo *repository.MenuRepository) *MenuService {
	return &MenuService{
		fetcher: fetcher,
		repo:    repo,
		state:   StateIdle,
	}
}

func (s *MenuService) State() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Refresh performs the one-shot load: fetch, swap the in-memory set, cache.
// The returned error is the fetch error, nil on success; cache failures are
// logged only.
func (s *MenuService) Refresh(ctx context.Context) (LoadState, error) {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	items, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return s.failWithFallback(err), err
	}

	if cacheErr := s.repo.BulkReplace(items); cacheErr != nil {
		log.Printf("menu cache replace: %v", &StoreError{Op: "bulk replace", Err: cacheErr})
	}

	s.mu.Lock()
	s.items = items
	s.state = StateReady
	s.lastErr = nil
	s.mu.Unlock()
	return StateReady, nil
}

func (s *MenuService) failWithFallback(fetchErr error) LoadState {
	cached, cacheErr := s.repo.All()
	if cacheErr != nil {
		log.Printf("menu cache read: %v", &StoreError{Op: "read all", Err: cacheErr})
		cached = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFailed
	s.lastErr = fetchErr
	if len(cached) > 0 {
		s.items = cached
	}
	return s.state
}

// Sections recomputes the grouped view for the given query and selected
// category labels. Before any successful load it answers from the cache
// table so offline search still works.
func (s *MenuService) Sections(query string, selected []string) ([]entity.Section, LoadState, error) {
	s.mu.Lock()
	items := s.items
	state := s.state
	s.mu.Unlock()

	if len(items) == 0 && state != StateReady {
		categories := make([]string, 0, len(selected))
		for _, label := range selected {
			categories = append(categories, strings.ToLower(strings.TrimSpace(label)))
		}
		rows, err := s.repo.Query(query, categories)
		if err != nil {
			return nil, state, &StoreError{Op: "query", Err: err}
		}
		return BuildSections(rows, query, selected), state, nil
	}

	return BuildSections(items, query, selected), state, nil
}
