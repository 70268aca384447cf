package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	cfg := Load()

	if cfg.APIBaseURL != DefaultAPIBaseURL {
		t.Fatalf("APIBaseURL = %q, want %q", cfg.APIBaseURL, DefaultAPIBaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("HTTPTimeout = %s", cfg.HTTPTimeout)
	}
	if cfg.Notification.FeedCooldown != 30*time.Second {
		t.Fatalf("FeedCooldown = %s", cfg.Notification.FeedCooldown)
	}
	if cfg.Notification.UnreadCooldown != 10*time.Second {
		t.Fatalf("UnreadCooldown = %s", cfg.Notification.UnreadCooldown)
	}
	if cfg.Notification.PollInterval != 60*time.Second {
		t.Fatalf("PollInterval = %s", cfg.Notification.PollInterval)
	}
	if cfg.Session.File != ".dealer-session.json" {
		t.Fatalf("Session.File = %q", cfg.Session.File)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://staging.evamobilya.com.tr")
	t.Setenv("FEED_COOLDOWN", "5s")

	cfg := Load()

	if cfg.APIBaseURL != "https://staging.evamobilya.com.tr" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Notification.FeedCooldown != 5*time.Second {
		t.Fatalf("FeedCooldown = %s", cfg.Notification.FeedCooldown)
	}
}
