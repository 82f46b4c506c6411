package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"my-admin/internal/config"
	"my-admin/internal/domain"
)

// Limits bounds user supplied values.
type Limits struct {
	TitleMinLength int
	TitleMaxLength int
	MaxDuration    time.Duration
}

// DefaultLimits mirrors the configuration defaults.
func DefaultLimits() Limits {
	return Limits{
		TitleMinLength: 1,
		TitleMaxLength: 255,
		MaxDuration:    24 * time.Hour,
	}
}

// Validator provides common validation utilities
type Validator struct {
	timeShorthandRegex *regexp.Regexp
	limits             Limits
}

// NewValidator creates a validator with default limits
func NewValidator() *Validator {
	return NewValidatorWithLimits(DefaultLimits())
}

// NewValidatorWithConfig creates a validator using the configured limits
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	if cfg == nil {
		return NewValidator()
	}
	return NewValidatorWithLimits(Limits{
		TitleMinLength: cfg.Validation.TitleMinLength,
		TitleMaxLength: cfg.Validation.TitleMaxLength,
		MaxDuration:    cfg.Validation.MaxDuration,
	})
}

// NewValidatorWithLimits creates a validator with explicit limits
func NewValidatorWithLimits(limits Limits) *Validator {
	return &Validator{
		timeShorthandRegex: regexp.MustCompile(`^(\d+)(mo|m|h|d|w|y)$`),
		limits:             limits,
	}
}

// Limits returns the limits in effect.
func (v *Validator) Limits() Limits {
	return v.limits
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the trimmed string has between min and max characters
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTitleLength checks a title against the configured limits
func (v *Validator) IsValidTitleLength(title string) bool {
	return v.IsValidStringLength(title, v.limits.TitleMinLength, v.limits.TitleMaxLength)
}

// HasNoControlCharacters rejects newlines, tabs and other control characters.
// Titles may be written in any script.
func (v *Validator) HasNoControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) < 0
}

// IsValidTimeRange checks that end, if present, is not before start
func (v *Validator) IsValidTimeRange(startTime time.Time, endTime *time.Time) bool {
	if endTime == nil {
		return true
	}
	return !endTime.Before(startTime)
}

// IsValidDuration checks if a duration is within the configured bound
func (v *Validator) IsValidDuration(duration time.Duration) bool {
	return duration >= 0 && duration <= v.limits.MaxDuration
}

// IsValidID checks if a record identity is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// IsValidTimeShorthand checks a relative range such as 30m, 2h, 7d, 2w, 3mo or 1y
func (v *Validator) IsValidTimeShorthand(shorthand string) bool {
	matches := v.timeShorthandRegex.FindStringSubmatch(shorthand)
	if matches == nil {
		return false
	}
	value, err := strconv.Atoi(matches[1])
	return err == nil && value > 0
}

// IsValidDateRange checks that start is not after end. Zero dates leave the range open.
func (v *Validator) IsValidDateRange(start, end domain.Date) bool {
	if start.IsZero() || end.IsZero() {
		return true
	}
	return !start.After(end)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// checkTitle records required, length and character failures for a title-like field.
func (v *Validator) checkTitle(ve *ValidationError, field, value string) {
	trimmed := v.TrimAndValidateString(value)
	if !v.IsNonEmptyString(trimmed) {
		ve.AddRequiredError(field)
		return
	}
	if !v.IsValidTitleLength(trimmed) {
		ve.AddInvalidLengthError(field, trimmed, v.limits.TitleMinLength, v.limits.TitleMaxLength)
	}
	if !v.HasNoControlCharacters(trimmed) {
		ve.AddInvalidCharacterError(field, trimmed)
	}
}
