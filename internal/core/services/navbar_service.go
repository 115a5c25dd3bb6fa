package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"finz-affiliate/internal/adapters/persistence/repositories"
	"finz-affiliate/internal/core/domain"
	"finz-affiliate/internal/core/navigation"
)

// NavbarService serves the menu links and their editor
type NavbarService struct {
	repo repositories.NavbarLinkRepository
	log  *zap.SugaredLogger
}

// NewNavbarService creates a new navbar service
func NewNavbarService(repo repositories.NavbarLinkRepository, log *zap.SugaredLogger) *NavbarService {
	return &NavbarService{repo: repo, log: log}
}

// EditorRow is one fixed menu slot as shown in the admin editor
type EditorRow struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title" validate:"notblank"`
	URL   string `json:"url"`
}

// List returns the stored rows in insertion order
func (s *NavbarService) List(ctx context.Context) ([]domain.NavbarLink, error) {
	return s.repo.List(ctx)
}

// Resolve returns the menu destinations. The menu always renders, so a
// store failure yields the compiled defaults.
func (s *NavbarService) Resolve(ctx context.Context) navigation.URLs {
	links, err := s.repo.List(ctx)
	if err != nil {
		s.log.Errorw("❌ Failed to load navbar links, using defaults", "error", err)
		return navigation.Defaults()
	}
	return navigation.Resolve(links)
}

// EditorRows returns exactly one row per fixed slot in menu order. Slots with
// no stored row get an empty url, or the compiled default when withDefaults is set.
func (s *NavbarService) EditorRows(ctx context.Context, withDefaults bool) ([]EditorRow, error) {
	links, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stored := firstByTitle(links)
	rows := make([]EditorRow, 0, len(navigation.Slots))
	for _, slot := range navigation.Slots {
		row := EditorRow{Title: slot.Title}
		if link, ok := stored[slot.Title]; ok {
			row.ID = link.ID
			row.URL = link.URL
		} else if withDefaults {
			row.URL = slot.DefaultURL
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Save reconciles the editor rows against the store by title. Existing rows
// are updated in place and a blank url deletes the row so the slot falls back
// to its default. Duplicate stored rows for a saved title are removed.
func (s *NavbarService) Save(ctx context.Context, rows []EditorRow) ([]EditorRow, error) {
	seen := make(map[string]bool, len(rows))
	for i := range rows {
		rows[i].Title = strings.TrimSpace(rows[i].Title)
		rows[i].URL = strings.TrimSpace(rows[i].URL)

		if _, ok := navigation.SlotByTitle(rows[i].Title); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNavbarTitle, rows[i].Title)
		}
		if seen[rows[i].Title] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNavbarTitle, rows[i].Title)
		}
		seen[rows[i].Title] = true
	}

	links, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	byTitle := make(map[string][]domain.NavbarLink)
	for _, l := range links {
		byTitle[l.Title] = append(byTitle[l.Title], l)
	}

	for _, row := range rows {
		existing := byTitle[row.Title]

		// only the first row per title is ever read
		for _, dup := range existingTail(existing) {
			if err := s.repo.Delete(ctx, dup.ID); err != nil {
				return nil, err
			}
		}

		switch {
		case len(existing) == 0 && row.URL == "":
			continue
		case len(existing) == 0:
			link := &domain.NavbarLink{Title: row.Title, URL: row.URL}
			if err := s.repo.Create(ctx, link); err != nil {
				return nil, err
			}
		case row.URL == "":
			if err := s.repo.Delete(ctx, existing[0].ID); err != nil {
				return nil, err
			}
		case existing[0].URL != row.URL:
			if err := s.repo.UpdateURL(ctx, existing[0].ID, row.URL); err != nil {
				return nil, err
			}
		}
	}

	s.log.Infow("✅ Navbar links saved", "rows", len(rows))
	return s.EditorRows(ctx, false)
}

func firstByTitle(links []domain.NavbarLink) map[string]domain.NavbarLink {
	out := make(map[string]domain.NavbarLink, len(links))
	for _, l := range links {
		if _, ok := out[l.Title]; !ok {
			out[l.Title] = l
		}
	}
	return out
}

func existingTail(links []domain.NavbarLink) []domain.NavbarLink {
	if len(links) < 2 {
		return nil
	}
	return links[1:]
}
