package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/HuyNLy/Little-Lemon-App/entity"
)

// FetchService retrieves the remote menu document and normalizes it into
// typed items. It never touches the local store; caching is the caller's
// (best-effort) job.
type FetchService struct {
	URL    string
	Client *http.Client
}

func NewFetchService(url string, timeout time.Duration) *FetchService {
	return &FetchService{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

type menuDocument struct {
	Menu []menuItemDTO `json:"menu"`
}

// The feed is loosely typed: price arrives as a string or a number.
type menuItemDTO struct {
	Name        string          `json:"name"`
	Price       json.RawMessage `json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
}

// Fetch issues one GET and maps each feed element to a MenuItem, assigning
// ids by array position. Any failure, including a single bad price, rejects
// the whole batch.
func (s *FetchService) Fetch(ctx context.Context) ([]entity.MenuItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	res, err := s.Client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &FetchError{Err: fmt.Errorf("unexpected status %s", res.Status)}
	}

	var doc menuDocument
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decode body: %w", err)}
	}

	items := make([]entity.MenuItem, 0, len(doc.Menu))
	for i, dto := range doc.Menu {
		price, err := parsePrice(dto.Price)
		if err != nil {
			return nil, &FetchError{Err: fmt.Errorf("item %d (%s): %w", i, dto.Name, err)}
		}
		items = append(items, entity.MenuItem{
			ID:          i,
			Name:        dto.Name,
			Price:       price,
			Description: dto.Description,
			Image:       dto.Image,
			Category:    strings.ToLower(strings.TrimSpace(dto.Category)),
		})
	}
	return items, nil
}

func parsePrice(raw json.RawMessage) (float64, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, fmt.Errorf("missing price")
	}
	s = strings.Trim(s, `"`)

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	return price, nil
}
