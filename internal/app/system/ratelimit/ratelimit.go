// internal/app/system/ratelimit/ratelimit.go

// Package ratelimit protects the login endpoint. Authentication is by
// mobile number alone (plus a CAPTCHA), so throttling per IP and per
// mobile number is the main brake on enumeration attempts.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Limiter is a sliding-window counter keyed by string. Safe for
// concurrent use.
type Limiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int
	duration time.Duration
	cleanup  time.Duration
}

type window struct {
	count     int
	expiresAt time.Time
}

// New creates a Limiter allowing limit requests per duration per key.
func New(limit int, duration time.Duration) *Limiter {
	l := &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		cleanup:  duration * 2,
	}
	go l.cleanupLoop()
	return l
}

// Allow reports whether a request for key fits inside the current window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, exists := l.windows[key]
	if !exists || now.After(w.expiresAt) {
		l.windows[key] = &window{count: 1, expiresAt: now.Add(l.duration)}
		return true
	}
	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// Reset clears the window for key. Called after a successful login so a
// legitimate user is not penalized for earlier typos.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cleanup)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for key, w := range l.windows {
			if now.After(w.expiresAt) {
				delete(l.windows, key)
			}
		}
		l.mu.Unlock()
	}
}

// ClientIP extracts the caller's IP, honoring proxy headers before falling
// back to RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// LoginLimiter throttles login attempts per IP and per mobile number.
type LoginLimiter struct {
	ip     *Limiter
	mobile *Limiter
}

// NewLoginLimiter uses the defaults: 10 attempts per IP per minute and
// 5 attempts per mobile number per 5 minutes.
func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		ip:     New(10, time.Minute),
		mobile: New(5, 5*time.Minute),
	}
}

// Check reports whether this attempt is allowed, with a user-facing reason
// when blocked.
func (ll *LoginLimiter) Check(r *http.Request, mobile string) (bool, string) {
	if !ll.ip.Allow(ClientIP(r)) {
		return false, "too many login attempts, please wait a minute"
	}
	if mobile != "" && !ll.mobile.Allow(mobile) {
		return false, "too many attempts for this number, please wait a few minutes"
	}
	return true, ""
}

// ResetMobile clears the per-number window after a successful login.
func (ll *LoginLimiter) ResetMobile(mobile string) {
	if mobile != "" {
		ll.mobile.Reset(mobile)
	}
}
