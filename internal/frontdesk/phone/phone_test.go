package phone

import (
	"regexp"
	"testing"
)

var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)

func TestNormalizeValid(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		region string
		want   string
	}{
		{"already E.164", "+14155550123", "US", "+14155550123"},
		{"US national with separators", "(415) 555-0123", "US", "+14155550123"},
		{"AU national", "02 9374 4000", "AU", "+61293744000"},
		{"explicit country code beats region", "+61 2 9374 4000", "US", "+61293744000"},
		{"dots and dashes", "415.555.0123", "US", "+14155550123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.raw, tt.region)
			if !ok {
				t.Fatalf("Normalize(%q, %q) ok = false, want true", tt.raw, tt.region)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.raw, tt.region, got, tt.want)
			}
			if !e164Pattern.MatchString(got) {
				t.Errorf("Normalize(%q, %q) = %q, not canonical E.164", tt.raw, tt.region, got)
			}
		})
	}
}

func TestNormalizeInvalid(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		region string
	}{
		{"empty", "", "US"},
		{"letters only", "not-a-number", "US"},
		{"too short", "12345", "US"},
		{"lone plus", "+", "US"},
		{"implausible length", "+1999999999999999999", "US"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := Normalize(tt.raw, tt.region); ok {
				t.Errorf("Normalize(%q, %q) = %q, want invalid", tt.raw, tt.region, got)
			}
		})
	}
}
