package service

import (
	"strings"
	"sync"
	"time"
)

// Period adalah bucket bulanan "YYYY-MM" untuk seluruh agregasi keuangan.
// Semua truncation dilakukan di timezone lembaga (Asia/Jakarta), bukan
// timezone caller, supaya tidak geser bulan di sekitar pergantian bulan.
type Period string

// PeriodAll dipakai sebagai filter "semua periode".
const PeriodAll Period = "all"

const periodLayout = "2006-01"

var (
	locOnce sync.Once
	loc     *time.Location
)

func location() *time.Location {
	locOnce.Do(func() {
		l, err := time.LoadLocation("Asia/Jakarta")
		if err != nil {
			// tzdata tidak tersedia di image → fallback WIB tetap UTC+7
			l = time.FixedZone("WIB", 7*3600)
		}
		loc = l
	})
	return loc
}

// PeriodOf memetakan timestamp ke periode bulanan.
func PeriodOf(t time.Time) (Period, error) {
	if t.IsZero() {
		return "", ErrInvalidTimestamp
	}
	return Period(t.In(location()).Format(periodLayout)), nil
}

// ParsePeriod memvalidasi string "YYYY-MM" dari tagihan syahriah / query param.
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return "", ErrInvalidTimestamp
	}
	return Period(t.Format(periodLayout)), nil
}

// ParsePeriodFilter menerima "all" (atau kosong) sebagai filter semua periode.
func ParsePeriodFilter(s string) (Period, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == string(PeriodAll) {
		return PeriodAll, nil
	}
	return ParsePeriod(s)
}

// CurrentPeriod mengembalikan periode bulan berjalan.
func CurrentPeriod(now time.Time) Period {
	return Period(now.In(location()).Format(periodLayout))
}

func (p Period) IsAll() bool { return p == PeriodAll }

// Closed menandakan periode sudah lewat (bukan bulan berjalan).
// Format YYYY-MM aman dibandingkan leksikografis.
func (p Period) Closed(now time.Time) bool {
	return !p.IsAll() && string(p) < string(CurrentPeriod(now))
}
