package services

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/HuyNLy/Little-Lemon-App/entity"
	"github.com/HuyNLy/Little-Lemon-App/pkg/kvstore"
	"github.com/HuyNLy/Little-Lemon-App/repository"
)

const (
	keyOnboardingCompleted = "onboardingCompleted"
	keyProfile             = "profile"
)

// ProfileService bridges the fast session cache (read before the database is
// ready) and the durable profile row. The durable row is authoritative; the
// cache is a read-through accelerator.
type ProfileService struct {
	cache *kvstore.Store
	repo  *repository.ProfileRepository
}

func NewProfileService(cache *kvstore.Store, repo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{cache: cache, repo: repo}
}

// Bootstrap returns the active profile (nil when none) and whether
// onboarding has completed. Cached fields are reconciled against the durable
// row for the same email, durable fields winning.
func (s *ProfileService) Bootstrap() (*entity.Profile, bool, error) {
	// A broken session file means no cached session, not a broken screen.
	flag, err := s.cache.Get(keyOnboardingCompleted)
	if err != nil {
		log.Printf("session cache read: %v", err)
		flag = ""
	}
	onboarded := flag == "true"

	raw, err := s.cache.Get(keyProfile)
	if err != nil {
		log.Printf("session cache read: %v", err)
		raw = ""
	}

	var cached *entity.Profile
	if raw != "" {
		var p entity.Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			log.Printf("session cache: bad profile payload, ignoring: %v", err)
		} else {
			cached = &p
		}
	}

	if cached == nil || cached.Email == "" {
		return cached, onboarded, nil
	}

	durable, err := s.repo.FindByEmail(normalizeEmail(cached.Email))
	if err != nil {
		log.Printf("profile load: %v", &StoreError{Op: "find by email", Err: err})
		return cached, onboarded, nil
	}
	if durable == nil {
		return cached, onboarded, nil
	}

	if err := s.writeCache(durable); err != nil {
		log.Printf("session cache refresh: %v", err)
	}
	return durable, onboarded, nil
}

// Persist writes the profile to the session cache, then to the durable
// store. The cache is written first so the session survives a store outage,
// but a durable failure still fails the save: the store is authoritative.
func (s *ProfileService) Persist(p *entity.Profile) error {
	p.Email = normalizeEmail(p.Email)
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)

	if err := s.writeCache(p); err != nil {
		return err
	}
	if err := s.repo.Upsert(p); err != nil {
		return &StoreError{Op: "upsert", Err: err}
	}
	return nil
}

// CompleteOnboarding saves the partial profile from the welcome form and
// marks onboarding done.
func (s *ProfileService) CompleteOnboarding(p *entity.Profile) error {
	if err := s.Persist(p); err != nil {
		return err
	}
	return s.cache.Set(keyOnboardingCompleted, "true")
}

// Logout clears the onboarding flag and the cached profile. The durable row
// stays; it is found again by email on the next onboarding.
func (s *ProfileService) Logout() error {
	if err := s.cache.Delete(keyOnboardingCompleted); err != nil {
		return err
	}
	return s.cache.Delete(keyProfile)
}

// Route decides the screen the app lands on when it resumes.
func (s *ProfileService) Route() entity.Destination {
	flag, err := s.cache.Get(keyOnboardingCompleted)
	if err != nil {
		log.Printf("session cache read: %v", err)
		return entity.DestinationWelcome
	}
	if flag == "true" {
		return entity.DestinationHome
	}
	return entity.DestinationWelcome
}

func (s *ProfileService) writeCache(p *entity.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.cache.Set(keyProfile, string(b))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
