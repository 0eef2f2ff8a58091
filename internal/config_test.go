package internal

import "testing"

func TestNewDefaultConfig_IsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.App.HTTP.Port != 8899 {
		t.Errorf("port = %d, want 8899", cfg.App.HTTP.Port)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"zero port", func(c *Config) { c.App.HTTP.Port = 0 }, true},
		{"port out of range", func(c *Config) { c.App.HTTP.Port = 70000 }, true},
		{"missing vault path", func(c *Config) { c.Vault.Path = "" }, true},
		{"missing domain", func(c *Config) { c.Site.Domain = "" }, true},
		{"missing version", func(c *Config) { c.Site.Version = "" }, true},
		{"missing scheme slug", func(c *Config) { c.Site.SchemeSlug = "" }, true},
		{"missing title is allowed", func(c *Config) { c.Site.Title = "" }, false},
		{"missing output path", func(c *Config) { c.Output.Path = "" }, true},
		{"missing sqlite path", func(c *Config) { c.SQLite.Path = "" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestHTTPConfig_Address(t *testing.T) {
	c := HTTPConfig{Port: 8899}
	if got := c.Address(); got != ":8899" {
		t.Errorf("Address() = %q, want %q", got, ":8899")
	}
}

func TestSiteConfig_ToSite(t *testing.T) {
	c := SiteConfig{
		Domain:     "https://example.test/",
		Version:    "0.0.1",
		SchemeSlug: "concept-scheme",
		Title:      "Test Scheme",
	}
	s := c.ToSite()
	if s.Domain != "https://example.test" {
		t.Errorf("Domain = %q, trailing slash not trimmed", s.Domain)
	}
	if got, want := s.ConceptURI("abc123"), "https://example.test/0.0.1/abc123/"; got != want {
		t.Errorf("ConceptURI = %q, want %q", got, want)
	}
}
