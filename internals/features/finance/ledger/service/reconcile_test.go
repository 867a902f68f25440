package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestReconciler(agg *Aggregator, snaps map[string]Snapshot, now time.Time) *Reconciler {
	return &Reconciler{
		Aggregator: agg,
		Snapshots:  &fakeSnapshots{rows: snaps},
		Now:        func() time.Time { return now },
	}
}

// Periode tertutup: rekap yang cocok dengan hitung ulang → freshness snapshot.
func TestCheckPeriod_ClosedMatch(t *testing.T) {
	santri := uuid.New()
	agg := newTestAggregator(
		[]DuesCharge{{ID: uuid.New(), SantriID: santri, Period: "2024-01", AmountIDR: 150000, Paid: true}},
		[]Donation{{ID: uuid.New(), AmountIDR: 200000, PaidAt: wib(2024, 1, 8, 10)}},
		[]Expenditure{{ID: uuid.New(), AmountIDR: 100000, OccurredAt: wib(2024, 1, 20, 10)}},
	)
	snaps := map[string]Snapshot{
		snapKey("2024-01", CategoryTotal): {
			Period: "2024-01", Category: CategoryTotal,
			IncomeIDR: 350000, ExpenditureIDR: 100000, ClosingBalanceIDR: 250000,
		},
	}

	rep, err := newTestReconciler(agg, snaps, wib(2024, 3, 5, 9)).CheckPeriod(context.Background(), "2024-01")
	if err != nil {
		t.Fatalf("CheckPeriod() err: %v", err)
	}
	if rep.Freshness != FreshnessSnapshot {
		t.Errorf("Freshness = %s, want snapshot", rep.Freshness)
	}
	if rep.Mismatch {
		t.Error("Mismatch = true untuk rekap yang cocok")
	}
}

// Periode tertutup: rekap melenceng → mismatch dilaporkan, bukan ditutupi.
func TestCheckPeriod_ClosedMismatch(t *testing.T) {
	santri := uuid.New()
	agg := newTestAggregator(
		[]DuesCharge{{ID: uuid.New(), SantriID: santri, Period: "2024-01", AmountIDR: 150000, Paid: true}},
		nil, nil,
	)
	snaps := map[string]Snapshot{
		snapKey("2024-01", CategoryTotal): {
			Period: "2024-01", Category: CategoryTotal,
			IncomeIDR: 125000, ExpenditureIDR: 0, ClosingBalanceIDR: 125000,
		},
	}

	rep, err := newTestReconciler(agg, snaps, wib(2024, 3, 5, 9)).CheckPeriod(context.Background(), "2024-01")
	if err != nil {
		t.Fatalf("mismatch bukan error fatal: %v", err)
	}
	if !rep.Mismatch {
		t.Error("Mismatch = false, want true untuk periode tertutup yang melenceng")
	}
	if rep.Freshness != FreshnessStale {
		t.Errorf("Freshness = %s, want stale", rep.Freshness)
	}
	if rep.Snapshot == nil || rep.Snapshot.IncomeIDR != 125000 {
		t.Error("kedua sisi angka harus ikut dilaporkan")
	}
}

// Bulan berjalan: divergensi wajar → stale tanpa mismatch.
func TestCheckPeriod_OpenPeriodDivergence(t *testing.T) {
	santri := uuid.New()
	agg := newTestAggregator(
		[]DuesCharge{
			{ID: uuid.New(), SantriID: santri, Period: "2024-03", AmountIDR: 150000, Paid: true},
			{ID: uuid.New(), SantriID: santri, Period: "2024-03", AmountIDR: 150000, Paid: true},
		},
		nil, nil,
	)
	// rekap lama: baru satu pembayaran yang terekam
	snaps := map[string]Snapshot{
		snapKey("2024-03", CategoryTotal): {
			Period: "2024-03", Category: CategoryTotal,
			IncomeIDR: 150000, ExpenditureIDR: 0, ClosingBalanceIDR: 150000,
		},
	}

	rep, err := newTestReconciler(agg, snaps, wib(2024, 3, 20, 9)).CheckPeriod(context.Background(), "2024-03")
	if err != nil {
		t.Fatalf("CheckPeriod() err: %v", err)
	}
	if rep.Mismatch {
		t.Error("bulan berjalan tidak boleh dianggap mismatch")
	}
	if rep.Freshness != FreshnessStale {
		t.Errorf("Freshness = %s, want stale", rep.Freshness)
	}
	if rep.Live.TotalIncomeIDR != 300000 {
		t.Errorf("Live.TotalIncomeIDR = %d, want 300000", rep.Live.TotalIncomeIDR)
	}
}

// Belum pernah direkap → angka live, tanpa snapshot.
func TestCheckPeriod_NoSnapshotYet(t *testing.T) {
	agg := newTestAggregator(nil,
		[]Donation{{ID: uuid.New(), AmountIDR: 50000, PaidAt: wib(2024, 2, 2, 8)}},
		nil,
	)

	rep, err := newTestReconciler(agg, nil, wib(2024, 2, 15, 9)).CheckPeriod(context.Background(), "2024-02")
	if err != nil {
		t.Fatalf("CheckPeriod() err: %v", err)
	}
	if rep.Freshness != FreshnessLive {
		t.Errorf("Freshness = %s, want live", rep.Freshness)
	}
	if rep.Snapshot != nil {
		t.Error("Snapshot harus nil kalau rekap belum ada")
	}
}
