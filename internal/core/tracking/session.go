package tracking

import (
	"encoding/binary"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"finz-affiliate/internal/core/domain"

	"github.com/google/uuid"
)

var mobileAgent = regexp.MustCompile(`mobile|android|iphone|ipad|tablet`)

// ClassifyDevice returns "mobile" for phone and tablet user agents, "desktop" otherwise
func ClassifyDevice(userAgent string) string {
	if mobileAgent.MatchString(strings.ToLower(userAgent)) {
		return domain.DeviceMobile
	}
	return domain.DeviceDesktop
}

// newSessionID builds "session_{unix millis}_{9 base36 chars}"
func newSessionID(now time.Time) string {
	id := uuid.New()
	n := binary.BigEndian.Uint64(id[:8])
	suffix := strconv.FormatUint(n, 36)
	if len(suffix) < 9 {
		suffix = strings.Repeat("0", 9-len(suffix)) + suffix
	}
	return fmt.Sprintf("session_%d_%s", now.UnixMilli(), suffix[:9])
}

// Session is the per-page-load visit state used to derive click metrics.
// It lives only in memory and is never persisted.
type Session struct {
	mu          sync.RWMutex
	id          string
	device      string
	startedAt   time.Time
	scrollDepth int
	lastSeen    time.Time
}

// Snapshot is a read-only copy of a session at a point in time
type Snapshot struct {
	ID          string    `json:"session_id"`
	Device      string    `json:"device"`
	StartedAt   time.Time `json:"started_at"`
	StayTime    int       `json:"stay_time"`
	ScrollDepth int       `json:"scroll_depth"`
}

// NewSession starts a session for a page load
func NewSession(userAgent string, now time.Time) *Session {
	return &Session{
		id:        newSessionID(now),
		device:    ClassifyDevice(userAgent),
		startedAt: now,
		lastSeen:  now,
	}
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// Device returns the device class
func (s *Session) Device() string {
	return s.device
}

// UpdateScroll records the scroll position reported by a scroll event and
// returns the new depth. The latest event always wins, even if it is shallower.
func (s *Session) UpdateScroll(scrollTop, scrollHeight, viewportHeight float64) int {
	depth := 0
	if denom := scrollHeight - viewportHeight; denom > 0 {
		depth = int(math.Round(100 * scrollTop / denom))
	}
	s.SetScrollDepth(depth)
	return s.ScrollDepth()
}

// SetScrollDepth stores a percentage reported directly by the client
func (s *Session) SetScrollDepth(pct int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	s.mu.Lock()
	s.scrollDepth = pct
	s.mu.Unlock()
}

// ScrollDepth returns the last observed scroll percentage
func (s *Session) ScrollDepth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scrollDepth
}

// Touch marks the session as seen at now
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen returns when the session was last used
func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

// Snapshot reads the session without mutating it
func (s *Session) Snapshot(now time.Time) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stay := int(math.Round(now.Sub(s.startedAt).Seconds()))
	if stay < 0 {
		stay = 0
	}

	return Snapshot{
		ID:          s.id,
		Device:      s.device,
		StartedAt:   s.startedAt,
		StayTime:    stay,
		ScrollDepth: s.scrollDepth,
	}
}
