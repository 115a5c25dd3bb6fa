package services

import (
	"context"
	"strings"

	"finz-affiliate/internal/adapters/persistence/repositories"
	"finz-affiliate/internal/core/domain"
	"finz-affiliate/internal/core/navigation"
)

// LoanPackageService manages the offer catalog
type LoanPackageService struct {
	repo repositories.LoanPackageRepository
}

// NewLoanPackageService creates a new loan package service
func NewLoanPackageService(repo repositories.LoanPackageRepository) *LoanPackageService {
	return &LoanPackageService{repo: repo}
}

// LoanPackageInput is the editable part of a package
type LoanPackageInput struct {
	Name              string `json:"name" validate:"notblank,max=255"`
	Slug              string `json:"slug" validate:"max=255"`
	Description       string `json:"description"`
	LoanLimit         string `json:"loan_limit" validate:"max=255"`
	InterestRate      string `json:"interest_rate" validate:"max=255"`
	DisbursementSpeed string `json:"disbursement_speed" validate:"max=255"`
	Logo              string `json:"logo"`
	Image             string `json:"image"`
	RegisterLink      string `json:"register_link"`
	DetailLink        string `json:"detail_link"`
}

func (in *LoanPackageInput) apply(p *domain.LoanPackage) {
	p.Name = strings.TrimSpace(in.Name)
	p.Slug = strings.TrimSpace(in.Slug)
	p.Description = strings.TrimSpace(in.Description)
	p.LoanLimit = strings.TrimSpace(in.LoanLimit)
	p.InterestRate = strings.TrimSpace(in.InterestRate)
	p.DisbursementSpeed = strings.TrimSpace(in.DisbursementSpeed)
	p.Logo = strings.TrimSpace(in.Logo)
	p.Image = strings.TrimSpace(in.Image)
	p.RegisterLink = strings.TrimSpace(in.RegisterLink)
	p.DetailLink = strings.TrimSpace(in.DetailLink)
}

// List returns packages oldest first, narrowed to the listing selected by tab
func (s *LoanPackageService) List(ctx context.Context, tab string) ([]*domain.LoanPackage, error) {
	pkgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(tab) == "" {
		return pkgs, nil
	}

	filtered := make([]*domain.LoanPackage, 0, len(pkgs))
	for _, p := range pkgs {
		if navigation.MatchesTab(tab, p.Slug, p.Name) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Get returns one package
func (s *LoanPackageService) Get(ctx context.Context, id string) (*domain.LoanPackage, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a package while fewer than MaxLoanPackages exist
func (s *LoanPackageService) Create(ctx context.Context, in LoanPackageInput) (*domain.LoanPackage, error) {
	pkg := &domain.LoanPackage{}
	in.apply(pkg)
	if pkg.Name == "" {
		return nil, ErrLoanPackageNameRequired
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= domain.MaxLoanPackages {
		return nil, domain.ErrPackageLimitReached
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Save upserts by id. An empty id inserts a new package.
func (s *LoanPackageService) Save(ctx context.Context, id string, in LoanPackageInput) (*domain.LoanPackage, error) {
	pkg := &domain.LoanPackage{ID: strings.TrimSpace(id)}
	in.apply(pkg)
	if pkg.Name == "" {
		return nil, ErrLoanPackageNameRequired
	}

	if err := s.repo.Save(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Update replaces the fields of an existing package
func (s *LoanPackageService) Update(ctx context.Context, id string, in LoanPackageInput) (*domain.LoanPackage, error) {
	pkg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.apply(pkg)
	if pkg.Name == "" {
		return nil, ErrLoanPackageNameRequired
	}

	if err := s.repo.Save(ctx, pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Delete removes a package; its tracking history stays
func (s *LoanPackageService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
