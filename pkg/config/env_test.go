package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	if got := GetEnvString("TEST_STRING", "default"); got != "value" {
		t.Errorf("got %q", got)
	}

	t.Setenv("TEST_STRING", "")
	if got := GetEnvString("TEST_STRING", "default"); got != "default" {
		t.Errorf("got %q, expected default for empty", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      int
		expected int
	}{
		{name: "valid", value: "42", def: 7, expected: 42},
		{name: "negative", value: "-3", def: 7, expected: -3},
		{name: "empty uses default", value: "", def: 7, expected: 7},
		{name: "garbage uses default", value: "abc", def: 7, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			if got := GetEnvInt("TEST_INT", tt.def); got != tt.expected {
				t.Errorf("got %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		def      bool
		expected bool
	}{
		{value: "true", def: false, expected: true},
		{value: "TRUE", def: false, expected: true},
		{value: "1", def: false, expected: true},
		{value: "t", def: false, expected: true},
		{value: "false", def: true, expected: false},
		{value: "0", def: true, expected: false},
		{value: "", def: true, expected: true},
		{value: "maybe", def: true, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			if got := GetEnvBool("TEST_BOOL", tt.def); got != tt.expected {
				t.Errorf("GetEnvBool(%q, %v) = %v, expected %v", tt.value, tt.def, got, tt.expected)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	if got := GetEnvDuration("TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("got %v", got)
	}

	t.Setenv("TEST_DURATION", "not-a-duration")
	if got := GetEnvDuration("TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("got %v, expected default for invalid", got)
	}
}

func TestGetEnvStringSlice(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      []string
		expected []string
	}{
		{name: "single", value: "a", def: nil, expected: []string{"a"}},
		{name: "multiple with spaces", value: "a, b ,c", def: nil, expected: []string{"a", "b", "c"}},
		{name: "empty elements dropped", value: "a,,b,", def: nil, expected: []string{"a", "b"}},
		{name: "unset uses default", value: "", def: []string{"*"}, expected: []string{"*"}},
		{name: "only commas uses default", value: ",,,", def: []string{"*"}, expected: []string{"*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SLICE", tt.value)
			got := GetEnvStringSlice("TEST_SLICE", tt.def)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidatePositiveDuration(t *testing.T) {
	if err := ValidatePositiveDuration(time.Second); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePositiveDuration(0); err == nil {
		t.Error("expected error for zero")
	}
	if err := ValidatePositiveDuration(-time.Second); err == nil {
		t.Error("expected error for negative")
	}
}

func TestValidateDurationRange(t *testing.T) {
	if err := ValidateDurationRange(5*time.Second, time.Second, time.Minute); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateDurationRange(2*time.Minute, time.Second, time.Minute); err == nil {
		t.Error("expected error above range")
	}
	if err := ValidateDurationRange(time.Second, time.Minute, time.Second); err == nil {
		t.Error("expected error for inverted range")
	}
}
