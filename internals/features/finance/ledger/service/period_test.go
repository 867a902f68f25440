package service

import (
	"errors"
	"testing"
	"time"
)

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		name    string
		in      time.Time
		want    Period
		wantErr bool
	}{
		{
			name: "tengah bulan",
			in:   time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC),
			want: "2024-02",
		},
		{
			name: "akhir bulan UTC masuk bulan berikutnya di WIB",
			// 31 Jan 18:00 UTC = 1 Feb 01:00 WIB
			in:   time.Date(2024, 1, 31, 18, 0, 0, 0, time.UTC),
			want: "2024-02",
		},
		{
			name: "awal bulan WIB tetap di bulan yang sama",
			in:   time.Date(2024, 3, 1, 0, 30, 0, 0, location()),
			want: "2024-03",
		},
		{
			name:    "zero time ditolak",
			in:      time.Time{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PeriodOf(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimestamp) {
					t.Fatalf("PeriodOf() err = %v, want ErrInvalidTimestamp", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("PeriodOf() unexpected err: %v", err)
			}
			if got != tt.want {
				t.Errorf("PeriodOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"2024-01", "2024-01", false},
		{" 2024-12 ", "2024-12", false},
		{"2024-13", "", true},
		{"2024-1", "", true},
		{"01-2024", "", true},
		{"", "", true},
		{"abc", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePeriod(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePeriod(%q) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}
}

func TestParsePeriodFilter(t *testing.T) {
	if p, err := ParsePeriodFilter(""); err != nil || !p.IsAll() {
		t.Errorf("filter kosong harus jadi all, got %s, %v", p, err)
	}
	if p, err := ParsePeriodFilter("ALL"); err != nil || !p.IsAll() {
		t.Errorf("ALL harus jadi all, got %s, %v", p, err)
	}
	if p, err := ParsePeriodFilter("2024-05"); err != nil || p != "2024-05" {
		t.Errorf("ParsePeriodFilter(2024-05) = %s, %v", p, err)
	}
	if _, err := ParsePeriodFilter("2024/05"); err == nil {
		t.Error("format salah harus error")
	}
}

func TestPeriodClosed(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, location())

	tests := []struct {
		period Period
		closed bool
	}{
		{"2024-02", true},
		{"2023-12", true},
		{"2024-03", false}, // bulan berjalan
		{"2024-04", false}, // masa depan
		{PeriodAll, false},
	}
	for _, tt := range tests {
		if got := tt.period.Closed(now); got != tt.closed {
			t.Errorf("Period(%s).Closed() = %v, want %v", tt.period, got, tt.closed)
		}
	}
}
