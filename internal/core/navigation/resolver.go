package navigation

import (
	"net/url"
	"regexp"
	"strings"

	"finz-affiliate/internal/core/domain"
)

// Key identifies one of the five semantic menu destinations
type Key string

const (
	KeyHome   Key = "home"
	KeyMuadee Key = "muadee"
	KeyTnex   Key = "tnex"
	KeyFE     Key = "fe"
	KeyCUB    Key = "cub"
)

// Slot binds a menu destination to its fixed admin title, keywords and default URL
type Slot struct {
	Key        Key
	Title      string
	Keywords   []string
	DefaultURL string
}

// Slots is the closed set of menu destinations in menu order
var Slots = []Slot{
	{Key: KeyHome, Title: "Trang chủ", Keywords: []string{"trang chu", "home"}, DefaultURL: "/"},
	{Key: KeyMuadee, Title: "Thẻ Muadee", Keywords: []string{"muadee"}, DefaultURL: "/the-muadee"},
	{Key: KeyTnex, Title: "Vay Tnex", Keywords: []string{"tnex"}, DefaultURL: "/vay-tnex"},
	{Key: KeyFE, Title: "Vay FE", Keywords: []string{"fe", "fe credit", "fecredit"}, DefaultURL: "/vay-fe"},
	{Key: KeyCUB, Title: "Vay CUB", Keywords: []string{"cub"}, DefaultURL: "/vay-cub"},
}

// SlotByTitle returns the slot whose fixed title equals title
func SlotByTitle(title string) (Slot, bool) {
	for _, s := range Slots {
		if s.Title == title {
			return s, true
		}
	}
	return Slot{}, false
}

// URLs holds the resolved destination of every menu slot. Every field is non-empty.
type URLs struct {
	Home   string `json:"home"`
	Muadee string `json:"muadee"`
	Tnex   string `json:"tnex"`
	FE     string `json:"fe"`
	CUB    string `json:"cub"`
}

// Get returns the URL for key
func (u URLs) Get(key Key) string {
	switch key {
	case KeyHome:
		return u.Home
	case KeyMuadee:
		return u.Muadee
	case KeyTnex:
		return u.Tnex
	case KeyFE:
		return u.FE
	case KeyCUB:
		return u.CUB
	}
	return ""
}

func (u *URLs) set(key Key, value string) {
	switch key {
	case KeyHome:
		u.Home = value
	case KeyMuadee:
		u.Muadee = value
	case KeyTnex:
		u.Tnex = value
	case KeyFE:
		u.FE = value
	case KeyCUB:
		u.CUB = value
	}
}

// Defaults returns the compiled-in destinations
func Defaults() URLs {
	var u URLs
	for _, s := range Slots {
		u.set(s.Key, s.DefaultURL)
	}
	return u
}

// Resolve maps stored links to the five menu destinations. Links must be in
// insertion order (created_at ascending); the first match wins.
func Resolve(links []domain.NavbarLink) URLs {
	var u URLs
	for _, s := range Slots {
		if found, ok := URLFor(links, s.Keywords); ok {
			u.set(s.Key, found)
			continue
		}
		u.set(s.Key, s.DefaultURL)
	}
	return u
}

var tabParam = regexp.MustCompile(`(?i)[?&]tab=([^&#]+)`)

// tabValue extracts the raw value of the tab query parameter from a link URL
func tabValue(link string) (string, bool) {
	m := tabParam.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	if v, err := url.QueryUnescape(m[1]); err == nil {
		return v, true
	}
	return m[1], true
}

// URLFor finds the URL of the first link matching keywords. Links carrying a
// tab query parameter are matched on that value before any title is considered.
func URLFor(links []domain.NavbarLink, keywords []string) (string, bool) {
	for _, l := range links {
		tab, ok := tabValue(l.URL)
		if !ok {
			continue
		}
		if containsAny(Normalize(tab), keywords) {
			return l.URL, true
		}
	}

	for _, l := range links {
		if containsAny(Normalize(l.Title), keywords) {
			if strings.TrimSpace(l.URL) == "" {
				return "", false
			}
			return l.URL, true
		}
	}

	return "", false
}
