package service

import (
	"context"
	"errors"
	"log"
	"time"
)

/* ==============================
   ENUM — kategori rekap
============================== */

type Category string

const (
	CategoryDues     Category = "dues"     // syahriah
	CategoryDonation Category = "donation" // donasi
	CategoryTotal    Category = "total"    // gabungan
)

func (c Category) Valid() bool {
	switch c {
	case CategoryDues, CategoryDonation, CategoryTotal:
		return true
	}
	return false
}

// Snapshot = satu baris rekap (period, category) hasil refresh.
type Snapshot struct {
	Period            Period    `json:"period"`
	Category          Category  `json:"category"`
	IncomeIDR         int64     `json:"income_idr"`
	ExpenditureIDR    int64     `json:"expenditure_idr"`
	ClosingBalanceIDR int64     `json:"closing_balance_idr"`
	UpdatedAt         time.Time `json:"updated_at"`
}

/* ==============================
   FRESHNESS — status angka
============================== */

type Freshness string

const (
	// FreshnessLive: belum ada rekap, angka murni hitung ulang.
	FreshnessLive Freshness = "live"
	// FreshnessSnapshot: rekap ada dan cocok dengan hitung ulang.
	FreshnessSnapshot Freshness = "snapshot"
	// FreshnessStale: rekap ada tapi berbeda dengan hitung ulang.
	FreshnessStale Freshness = "stale"
)

// ReconcileReport menyandingkan hitung ulang live dengan rekap tersimpan.
// Untuk periode tertutup keduanya WAJIB sama; selisih = warning integritas
// data yang harus sampai ke admin, bukan diselesaikan diam-diam.
type ReconcileReport struct {
	Period    Period    `json:"period"`
	Freshness Freshness `json:"freshness"`
	Live      Result    `json:"live"`
	Snapshot  *Snapshot `json:"snapshot,omitempty"`

	// Mismatch true hanya untuk periode tertutup yang rekapnya melenceng.
	Mismatch bool `json:"mismatch"`
}

type Reconciler struct {
	Aggregator *Aggregator
	Snapshots  SnapshotSource

	// Now bisa di-inject di test; nil = time.Now.
	Now func() time.Time
}

func (r *Reconciler) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// CheckPeriod membandingkan aggregate(period) dengan rekap kategori total.
//
// Periode berjalan boleh berbeda (rekap eventually consistent) — caller
// cukup lihat Freshness. Periode tertutup tidak boleh: selisih dilaporkan
// sebagai Mismatch dan di-log sebagai warning.
func (r *Reconciler) CheckPeriod(ctx context.Context, period Period) (ReconcileReport, error) {
	if period.IsAll() {
		p, err := ParsePeriod(string(period))
		if err != nil {
			return ReconcileReport{}, err
		}
		period = p
	}

	live, err := r.Aggregator.Aggregate(ctx, period, Scope{})
	if err != nil {
		return ReconcileReport{}, err
	}

	report := ReconcileReport{Period: period, Live: live, Freshness: FreshnessLive}

	snap, err := r.Snapshots.GetSnapshot(ctx, period, CategoryTotal)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			// belum pernah direkap → live adalah satu-satunya sumber angka
			return report, nil
		}
		return ReconcileReport{}, err
	}
	report.Snapshot = &snap

	match := snap.IncomeIDR == live.TotalIncomeIDR &&
		snap.ExpenditureIDR == live.TotalExpenditureIDR &&
		snap.ClosingBalanceIDR == live.ClosingBalanceIDR

	if match {
		report.Freshness = FreshnessSnapshot
		return report, nil
	}

	report.Freshness = FreshnessStale
	if period.Closed(r.now()) {
		report.Mismatch = true
		log.Printf("[WARN] %v: period=%s live_income=%d rekap_income=%d live_out=%d rekap_out=%d",
			ErrSnapshotMismatch, period,
			live.TotalIncomeIDR, snap.IncomeIDR,
			live.TotalExpenditureIDR, snap.ExpenditureIDR)
	}
	return report, nil
}
