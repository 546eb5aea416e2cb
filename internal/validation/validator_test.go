package validation

import (
	"math"
	"strings"
	"testing"
	"time"

	"studyflow/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tabs and newlines", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidStringLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		min      int
		max      int
		expected bool
	}{
		{"Valid length", "hello", 1, 10, true},
		{"Too short", "", 1, 10, false},
		{"Too long", "hello world", 1, 5, false},
		{"Exact min", "a", 1, 10, true},
		{"Exact max", "hello", 1, 5, true},
		{"Trimmed before counting", "  hi  ", 1, 2, true},
		{"Multi-byte counted as characters", "₹₹₹", 1, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidStringLength(tt.input, tt.min, tt.max)
			if result != tt.expected {
				t.Errorf("IsValidStringLength(%q, %d, %d) = %v, expected %v", tt.input, tt.min, tt.max, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidMonthAndYear(t *testing.T) {
	validator := NewValidator()

	for _, month := range []int{1, 6, 12} {
		if !validator.IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = false, expected true", month)
		}
	}
	for _, month := range []int{0, 13, -1} {
		if validator.IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = true, expected false", month)
		}
	}
	if validator.IsValidYear(0) {
		t.Error("IsValidYear(0) = true, expected false")
	}
	if !validator.IsValidYear(2025) {
		t.Error("IsValidYear(2025) = false, expected true")
	}
}

func TestValidator_IsValidAmount(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		amount   float64
		expected bool
	}{
		{"Zero", 0, true},
		{"Positive", 15, true},
		{"Negative", -1, false},
		{"NaN", math.NaN(), false},
		{"Infinity", math.Inf(1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsValidAmount(tt.amount); got != tt.expected {
				t.Errorf("IsValidAmount(%v) = %v, expected %v", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidStudyDuration(t *testing.T) {
	validator := NewValidator()

	if !validator.IsValidStudyDuration(0) {
		t.Error("zero duration should be valid")
	}
	if !validator.IsValidStudyDuration(int64((24 * time.Hour).Seconds())) {
		t.Error("duration equal to the maximum should be valid")
	}
	if validator.IsValidStudyDuration(int64((25 * time.Hour).Seconds())) {
		t.Error("duration above the maximum should be invalid")
	}
	if validator.IsValidStudyDuration(-1) {
		t.Error("negative duration should be invalid")
	}
}

func TestValidator_WithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TitleMaxLength = 5
	cfg.Validation.MaxStudyDuration = time.Hour

	validator := NewValidatorWithConfig(cfg)

	if validator.IsValidTitleLength(strings.Repeat("a", 6)) {
		t.Error("title above the configured maximum should be invalid")
	}
	if !validator.IsValidTitleLength("abcde") {
		t.Error("title at the configured maximum should be valid")
	}
	if validator.IsValidStudyDuration(3601) {
		t.Error("duration above the configured maximum should be invalid")
	}
	if NewValidatorWithConfig(nil).TitleMaxLength() != 255 {
		t.Error("nil config should fall back to defaults")
	}
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	validator := NewValidator()

	if got := validator.TrimAndValidateString("  hello  "); got != "hello" {
		t.Errorf("TrimAndValidateString() = %q, expected %q", got, "hello")
	}
}
