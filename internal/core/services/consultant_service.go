package services

import (
	"context"
	"strings"

	"finz-affiliate/internal/adapters/persistence/repositories"
	"finz-affiliate/internal/core/domain"
)

// ConsultantService manages the single consultant profile
type ConsultantService struct {
	repo repositories.ConsultantRepository
}

// NewConsultantService creates a new consultant service
func NewConsultantService(repo repositories.ConsultantRepository) *ConsultantService {
	return &ConsultantService{repo: repo}
}

// ConsultantInput represents the consultant form
type ConsultantInput struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"notblank,max=255"`
	Avatar      string `json:"avatar"`
	Phone       string `json:"phone" validate:"max=50"`
	Zalo        string `json:"zalo" validate:"max=50"`
	ZaloLink    string `json:"zalo_link"`
	Facebook    string `json:"facebook"`
	Email       string `json:"email" validate:"omitempty,email"`
	CreditCards string `json:"credit_cards"`
	Loans       string `json:"loans"`
	Ewallets    string `json:"ewallets"`
}

// Get returns the profile shown on the site
func (s *ConsultantService) Get(ctx context.Context) (*domain.Consultant, error) {
	return s.repo.First(ctx)
}

// Save trims the form and upserts it by id
func (s *ConsultantService) Save(ctx context.Context, in ConsultantInput) (*domain.Consultant, error) {
	c := &domain.Consultant{
		ID:          strings.TrimSpace(in.ID),
		Name:        strings.TrimSpace(in.Name),
		Avatar:      strings.TrimSpace(in.Avatar),
		Phone:       strings.TrimSpace(in.Phone),
		Zalo:        strings.TrimSpace(in.Zalo),
		ZaloLink:    strings.TrimSpace(in.ZaloLink),
		Facebook:    strings.TrimSpace(in.Facebook),
		Email:       strings.TrimSpace(in.Email),
		CreditCards: strings.TrimSpace(in.CreditCards),
		Loans:       strings.TrimSpace(in.Loans),
		Ewallets:    strings.TrimSpace(in.Ewallets),
	}

	if c.Name == "" {
		return nil, ErrConsultantNameRequired
	}

	if err := s.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
