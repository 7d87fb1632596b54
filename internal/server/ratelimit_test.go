package server

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(60, time.Minute, 2, nil)
	defer rl.Close()

	// Burst capacity of 2 permits two immediate requests per key.
	if !rl.Allow("ip:10.0.0.1") {
		t.Error("first request should be allowed")
	}
	if !rl.Allow("ip:10.0.0.1") {
		t.Error("second request should be allowed within burst")
	}
	if rl.Allow("ip:10.0.0.1") {
		t.Error("third immediate request should be rejected")
	}

	// A different key has an independent bucket.
	if !rl.Allow("ip:10.0.0.2") {
		t.Error("request for a new key should be allowed")
	}
}

func TestRateLimiterStats(t *testing.T) {
	rl := NewRateLimiter(120, time.Minute, 5, nil)
	defer rl.Close()

	rl.Allow("api:key-one")
	rl.Allow("ip:192.168.1.1")

	stats := rl.GetStats()
	if got := stats["active_limiters"].(int); got != 2 {
		t.Errorf("active_limiters = %d, want 2", got)
	}
	if got := stats["rate_per_minute"].(float64); got != 120 {
		t.Errorf("rate_per_minute = %v, want 120", got)
	}
	if got := stats["burst_capacity"].(int); got != 5 {
		t.Errorf("burst_capacity = %d, want 5", got)
	}
}

func TestGetRateLimitKey(t *testing.T) {
	tests := []struct {
		name     string
		apiKey   string
		bearer   string
		byAPIKey bool
		byIP     bool
		want     string
	}{
		{
			name:     "api key header preferred",
			apiKey:   "secret",
			byAPIKey: true,
			byIP:     true,
			want:     "api:secret",
		},
		{
			name:     "bearer token fallback",
			bearer:   "Bearer token123",
			byAPIKey: true,
			want:     "api:token123",
		},
		{
			name: "ip fallback when no api key",
			byAPIKey: true,
			byIP:     true,
			want:     "ip:192.0.2.1",
		},
		{
			name: "disabled returns empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/analyze-answer", nil)
			r.RemoteAddr = "192.0.2.1:51234"
			if tt.apiKey != "" {
				r.Header.Set("X-API-Key", tt.apiKey)
			}
			if tt.bearer != "" {
				r.Header.Set("Authorization", tt.bearer)
			}
			if got := getRateLimitKey(r, tt.byAPIKey, tt.byIP); got != tt.want {
				t.Errorf("getRateLimitKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xRealIP    string
		remoteAddr string
		want       string
	}{
		{
			name:       "x-forwarded-for first valid entry",
			xff:        "203.0.113.7, 10.0.0.1",
			remoteAddr: "192.0.2.1:1234",
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for garbage skipped",
			xff:        "not-an-ip, 203.0.113.9",
			remoteAddr: "192.0.2.1:1234",
			want:       "203.0.113.9",
		},
		{
			name:       "x-real-ip fallback",
			xRealIP:    "198.51.100.4",
			remoteAddr: "192.0.2.1:1234",
			want:       "198.51.100.4",
		},
		{
			name:       "remote addr fallback",
			remoteAddr: "192.0.2.1:1234",
			want:       "192.0.2.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/health", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xRealIP != "" {
				r.Header.Set("X-Real-IP", tt.xRealIP)
			}
			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
