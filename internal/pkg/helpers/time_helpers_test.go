package helpers

import (
	"testing"
	"time"
)

func TestElapsedHours(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want float64
	}{
		{
			name: "regular morning shift",
			from: base,
			to:   base.Add(4*time.Hour + 30*time.Minute),
			want: 4.5,
		},
		{
			name: "sub-minute span is not clamped",
			from: base,
			to:   base.Add(36 * time.Second),
			want: 0.01,
		},
		{
			name: "past midnight",
			from: time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC),
			to:   time.Date(2025, 3, 11, 1, 30, 0, 0, time.UTC),
			want: 2.5,
		},
		{
			name: "zero span",
			from: base,
			to:   base,
			want: 0,
		},
		{
			name: "rounds to two decimals",
			from: base,
			to:   base.Add(1*time.Hour + 10*time.Minute + 30*time.Second),
			want: 1.18,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedHours(tt.from, tt.to); got != tt.want {
				t.Errorf("ElapsedHours() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{4.5, "4.50"},
		{0, "0.00"},
		{0.01, "0.01"},
		{12.345, "12.35"},
	}

	for _, tt := range tests {
		if got := FormatHours(tt.hours); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

func TestDateOf(t *testing.T) {
	instant := time.Date(2025, 3, 10, 18, 45, 12, 0, time.UTC)
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	if got := DateOf(instant); !got.Equal(want) {
		t.Errorf("DateOf() = %v, want %v", got, want)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("2h", time.Hour); got != 2*time.Hour {
		t.Errorf("ParseDuration(2h) = %v, want 2h", got)
	}
	if got := ParseDuration("not-a-duration", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(invalid) = %v, want fallback 1h", got)
	}
}
