package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestChoiceEnvOrDefault(t *testing.T) {
	t.Setenv("CHOICE_TEST", " JSON ")
	if got := choiceEnvOrDefault("CHOICE_TEST", "text", "text", "json"); got != "json" {
		t.Fatalf("expected normalized json, got %s", got)
	}
	t.Setenv("CHOICE_TEST", "xml")
	if got := choiceEnvOrDefault("CHOICE_TEST", "text", "text", "json"); got != "text" {
		t.Fatalf("expected default for unknown value, got %s", got)
	}
}

func TestBoundedIntEnvOrDefault(t *testing.T) {
	t.Setenv("TOP_TEST", "500")
	if got := boundedIntEnvOrDefault("TOP_TEST", 5, maxTopN); got != maxTopN {
		t.Fatalf("expected clamp to %d, got %d", maxTopN, got)
	}
	t.Setenv("TOP_TEST", "-1")
	if got := boundedIntEnvOrDefault("TOP_TEST", 5, maxTopN); got != 5 {
		t.Fatalf("expected default for non-positive value, got %d", got)
	}
}

func TestLoadRejectsUnknownLogSettings(t *testing.T) {
	t.Setenv(envLogLevel, "loud")
	t.Setenv(envLogFormat, "xml")
	cfg := Load()
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("expected log defaults, got %+v", cfg.Log)
	}
}
