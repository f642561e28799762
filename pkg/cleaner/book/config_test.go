package book

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.MaxLineLength != 50 {
		t.Errorf("expected MaxLineLength 50, got %d", cfg.MaxLineLength)
	}
	if cfg.MinRepeat != 3 {
		t.Errorf("expected MinRepeat 3, got %d", cfg.MinRepeat)
	}
	if cfg.BibliographyMinOffset != 0.5 {
		t.Errorf("expected BibliographyMinOffset 0.5, got %f", cfg.BibliographyMinOffset)
	}
	if cfg.BibliographyConfidentOffset != 0.8 {
		t.Errorf("expected BibliographyConfidentOffset 0.8, got %f", cfg.BibliographyConfidentOffset)
	}
	if cfg.TOCMaxSpan != 300 {
		t.Errorf("expected TOCMaxSpan 300, got %d", cfg.TOCMaxSpan)
	}
	if cfg.RemoveTOC || cfg.VerifyCitations {
		t.Error("expected optional heuristics to be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestPresetThorough(t *testing.T) {
	cfg := PresetThorough()

	if !cfg.RemoveTOC {
		t.Error("expected RemoveTOC to be enabled")
	}
	if !cfg.VerifyCitations {
		t.Error("expected VerifyCitations to be enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"max line length zero", func(c *Config) { c.MaxLineLength = 0 }, "MaxLineLength"},
		{"min repeat one", func(c *Config) { c.MinRepeat = 1 }, "MinRepeat"},
		{"offset above one", func(c *Config) { c.BibliographyMinOffset = 1.5 }, "BibliographyMinOffset"},
		{"negative offset", func(c *Config) { c.BibliographyMinOffset = -0.1 }, "BibliographyMinOffset"},
		{"confident before min", func(c *Config) { c.BibliographyConfidentOffset = 0.2 }, "BibliographyConfidentOffset"},
		{"toc span zero", func(c *Config) { c.TOCMaxSpan = 0 }, "TOCMaxSpan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			found := false
			for _, f := range cfgErr.Fields {
				if f.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on %s, got %+v", tt.field, cfgErr.Fields)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected message to name %s, got %q", tt.field, err.Error())
			}
		})
	}
}
