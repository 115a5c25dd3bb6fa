package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"finz-affiliate/internal/core/domain"
)

// ============================================================
// Catalog Tables
// ============================================================

// LoanPackage represents loan_packages table
type LoanPackage struct {
	ID                string    `gorm:"primaryKey;size:36"`
	Name              string    `gorm:"size:255;not null"`
	Slug              string    `gorm:"size:255;index"`
	Description       string    `gorm:"type:text"`
	LoanLimit         string    `gorm:"size:255"`
	InterestRate      string    `gorm:"size:255"`
	DisbursementSpeed string    `gorm:"size:255"`
	Logo              string    `gorm:"type:text"`
	Image             string    `gorm:"type:text"`
	RegisterLink      string    `gorm:"type:text"`
	DetailLink        string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"autoCreateTime;index"`
}

func (LoanPackage) TableName() string {
	return "loan_packages"
}

func (m *LoanPackage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *LoanPackage) ToDomain() *domain.LoanPackage {
	return &domain.LoanPackage{
		ID:                m.ID,
		Name:              m.Name,
		Slug:              m.Slug,
		Description:       m.Description,
		LoanLimit:         m.LoanLimit,
		InterestRate:      m.InterestRate,
		DisbursementSpeed: m.DisbursementSpeed,
		Logo:              m.Logo,
		Image:             m.Image,
		RegisterLink:      m.RegisterLink,
		DetailLink:        m.DetailLink,
		CreatedAt:         m.CreatedAt,
	}
}

func LoanPackageFromDomain(p *domain.LoanPackage) *LoanPackage {
	return &LoanPackage{
		ID:                p.ID,
		Name:              p.Name,
		Slug:              p.Slug,
		Description:       p.Description,
		LoanLimit:         p.LoanLimit,
		InterestRate:      p.InterestRate,
		DisbursementSpeed: p.DisbursementSpeed,
		Logo:              p.Logo,
		Image:             p.Image,
		RegisterLink:      p.RegisterLink,
		DetailLink:        p.DetailLink,
		CreatedAt:         p.CreatedAt,
	}
}

// Consultant represents consultants table
type Consultant struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"size:255;not null"`
	Avatar      string    `gorm:"type:text"`
	Phone       string    `gorm:"size:50"`
	Zalo        string    `gorm:"size:50"`
	ZaloLink    string    `gorm:"type:text"`
	Facebook    string    `gorm:"type:text"`
	Email       string    `gorm:"size:255"`
	CreditCards string    `gorm:"type:text"`
	Loans       string    `gorm:"type:text"`
	Ewallets    string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Consultant) TableName() string {
	return "consultants"
}

func (m *Consultant) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *Consultant) ToDomain() *domain.Consultant {
	return &domain.Consultant{
		ID:          m.ID,
		Name:        m.Name,
		Avatar:      m.Avatar,
		Phone:       m.Phone,
		Zalo:        m.Zalo,
		ZaloLink:    m.ZaloLink,
		Facebook:    m.Facebook,
		Email:       m.Email,
		CreditCards: m.CreditCards,
		Loans:       m.Loans,
		Ewallets:    m.Ewallets,
		CreatedAt:   m.CreatedAt,
	}
}

func ConsultantFromDomain(c *domain.Consultant) *Consultant {
	return &Consultant{
		ID:          c.ID,
		Name:        c.Name,
		Avatar:      c.Avatar,
		Phone:       c.Phone,
		Zalo:        c.Zalo,
		ZaloLink:    c.ZaloLink,
		Facebook:    c.Facebook,
		Email:       c.Email,
		CreditCards: c.CreditCards,
		Loans:       c.Loans,
		Ewallets:    c.Ewallets,
		CreatedAt:   c.CreatedAt,
	}
}

// NavbarLink represents navbar_links table
type NavbarLink struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Title     string    `gorm:"size:255;not null;index"`
	URL       string    `gorm:"column:url;type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (NavbarLink) TableName() string {
	return "navbar_links"
}

func (m *NavbarLink) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *NavbarLink) ToDomain() domain.NavbarLink {
	return domain.NavbarLink{
		ID:        m.ID,
		Title:     m.Title,
		URL:       m.URL,
		CreatedAt: m.CreatedAt,
	}
}

// ============================================================
// Admin Table
// ============================================================

// AdminUser represents admin_users table
type AdminUser struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Username  string    `gorm:"uniqueIndex;size:100;not null"`
	Password  string    `gorm:"size:255;not null"`
	Role      string    `gorm:"size:20;default:'admin'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

func (m *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *AdminUser) ToDomain() *domain.AdminUser {
	return &domain.AdminUser{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

// ============================================================
// Tracking Tables (append-only)
// ============================================================

// OfferImpression represents offer_impressions table.
// OfferID is not a foreign key; navigation rows carry a sentinel id.
type OfferImpression struct {
	ID             string       `gorm:"primaryKey;size:36"`
	OfferID        string       `gorm:"size:64;not null;index"`
	PlatformSource string       `gorm:"size:100;not null;index"`
	CreatedAt      time.Time    `gorm:"autoCreateTime;index"`
	LoanPackage    *LoanPackage `gorm:"foreignKey:OfferID;references:ID"`
}

func (OfferImpression) TableName() string {
	return "offer_impressions"
}

func (m *OfferImpression) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *OfferImpression) ToDomain() domain.OfferImpression {
	return domain.OfferImpression{
		ID:             m.ID,
		OfferID:        m.OfferID,
		PlatformSource: m.PlatformSource,
		CreatedAt:      m.CreatedAt,
		Offer:          offerRef(m.LoanPackage),
	}
}

func OfferImpressionFromDomain(e *domain.OfferImpression) *OfferImpression {
	return &OfferImpression{
		ID:             e.ID,
		OfferID:        e.OfferID,
		PlatformSource: e.PlatformSource,
		CreatedAt:      e.CreatedAt,
	}
}

// ClickTracking represents click_tracking table
type ClickTracking struct {
	ID             string       `gorm:"primaryKey;size:36"`
	OfferID        string       `gorm:"size:64;not null;index"`
	PlatformSource string       `gorm:"size:100;not null;index"`
	Device         *string      `gorm:"size:20"`
	SessionID      *string      `gorm:"size:64;index"`
	StayTime       *int
	ScrollDepth    *int
	CreatedAt      time.Time    `gorm:"autoCreateTime;index"`
	LoanPackage    *LoanPackage `gorm:"foreignKey:OfferID;references:ID"`
}

func (ClickTracking) TableName() string {
	return "click_tracking"
}

func (m *ClickTracking) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *ClickTracking) ToDomain() domain.ClickTracking {
	return domain.ClickTracking{
		ID:             m.ID,
		OfferID:        m.OfferID,
		PlatformSource: m.PlatformSource,
		Device:         m.Device,
		SessionID:      m.SessionID,
		StayTime:       m.StayTime,
		ScrollDepth:    m.ScrollDepth,
		CreatedAt:      m.CreatedAt,
		Offer:          offerRef(m.LoanPackage),
	}
}

func ClickTrackingFromDomain(e *domain.ClickTracking) *ClickTracking {
	return &ClickTracking{
		ID:             e.ID,
		OfferID:        e.OfferID,
		PlatformSource: e.PlatformSource,
		Device:         e.Device,
		SessionID:      e.SessionID,
		StayTime:       e.StayTime,
		ScrollDepth:    e.ScrollDepth,
		CreatedAt:      e.CreatedAt,
	}
}

func offerRef(p *LoanPackage) *domain.OfferRef {
	if p == nil || p.ID == "" {
		return nil
	}
	return &domain.OfferRef{ID: p.ID, Name: p.Name}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all application tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Catalog
		&LoanPackage{},
		&Consultant{},
		&NavbarLink{},
		// Admin
		&AdminUser{},
		// Tracking
		&OfferImpression{},
		&ClickTracking{},
	)
}
