package domain

import "time"

// Role represents an admin role
type Role string

const (
	RoleAdmin Role = "admin"
)

// NavigationOfferID is the offer_id stored for menu-navigation clicks.
// It never corresponds to a loan package.
const NavigationOfferID = "navigation"

// MaxLoanPackages is the number of packages an administrator may maintain at once.
// Only the admin create action enforces it.
const MaxLoanPackages = 8

// Device classes recorded on clicks
const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

// LoanPackage represents an offer shown on the marketing pages
type LoanPackage struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	Description       string    `json:"description"`
	LoanLimit         string    `json:"loan_limit"`
	InterestRate      string    `json:"interest_rate"`
	DisbursementSpeed string    `json:"disbursement_speed"`
	Logo              string    `json:"logo"`
	Image             string    `json:"image"`
	RegisterLink      string    `json:"register_link"` // empty means inactive
	DetailLink        string    `json:"detail_link"`   // empty means inactive
	CreatedAt         time.Time `json:"created_at"`
}

// Consultant is the single contact profile shown on the site
type Consultant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Avatar      string    `json:"avatar"`
	Phone       string    `json:"phone"`
	Zalo        string    `json:"zalo"`
	ZaloLink    string    `json:"zalo_link"`
	Facebook    string    `json:"facebook"`
	Email       string    `json:"email"`
	CreditCards string    `json:"credit_cards"`
	Loans       string    `json:"loans"`
	Ewallets    string    `json:"ewallets"`
	CreatedAt   time.Time `json:"created_at"`
}

// NavbarLink is one admin-entered menu link
type NavbarLink struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminUser represents a row of admin_users
type AdminUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// OfferRef is the optional result of joining an event to its loan package.
// A nil *OfferRef means the join found nothing.
type OfferRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OfferImpression is an append-only impression event
type OfferImpression struct {
	ID             string    `json:"id"`
	OfferID        string    `json:"offer_id"`
	PlatformSource string    `json:"platform_source"`
	CreatedAt      time.Time `json:"created_at"`
	Offer          *OfferRef `json:"offer,omitempty"`
}

// ClickTracking is an append-only click event
type ClickTracking struct {
	ID             string    `json:"id"`
	OfferID        string    `json:"offer_id"`
	PlatformSource string    `json:"platform_source"`
	Device         *string   `json:"device"`
	SessionID      *string   `json:"session_id"`
	StayTime       *int      `json:"stay_time"`
	ScrollDepth    *int      `json:"scroll_depth"`
	CreatedAt      time.Time `json:"created_at"`
	Offer          *OfferRef `json:"offer,omitempty"`
}
