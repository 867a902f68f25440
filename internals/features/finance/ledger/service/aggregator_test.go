package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func wib(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, location())
}

// Skenario: tiga tagihan satu santri, hanya yang paid masuk pemasukan.
func TestAggregate_UnpaidNeverCounted(t *testing.T) {
	santri := uuid.New()
	agg := newTestAggregator(
		[]DuesCharge{
			{ID: uuid.New(), SantriID: santri, Period: "2024-01", AmountIDR: 50000, Paid: true},
			{ID: uuid.New(), SantriID: santri, Period: "2024-02", AmountIDR: 50000, Paid: false},
			{ID: uuid.New(), SantriID: santri, Period: "2024-03", AmountIDR: 50000, Paid: true},
		},
		nil, nil,
	)

	res, err := agg.Aggregate(context.Background(), PeriodAll, Scope{SantriIDs: []uuid.UUID{santri}})
	if err != nil {
		t.Fatalf("Aggregate() err: %v", err)
	}
	if res.DuesIncomeIDR != 100000 {
		t.Errorf("DuesIncomeIDR = %d, want 100000", res.DuesIncomeIDR)
	}
	if res.TotalIncomeIDR != 100000 || res.ClosingBalanceIDR != 100000 {
		t.Errorf("total/saldo salah: %+v", res)
	}
	if res.SkippedCount != 0 {
		t.Errorf("SkippedCount = %d, want 0", res.SkippedCount)
	}
}

// Skenario: donasi 200k + pemakaian 75k di 2024-02 tanpa syahriah paid.
func TestAggregate_SinglePeriod(t *testing.T) {
	agg := newTestAggregator(
		nil,
		[]Donation{{ID: uuid.New(), AmountIDR: 200000, PaidAt: wib(2024, 2, 10, 9)}},
		[]Expenditure{{ID: uuid.New(), AmountIDR: 75000, OccurredAt: wib(2024, 2, 20, 14)}},
	)

	res, err := agg.Aggregate(context.Background(), "2024-02", Scope{})
	if err != nil {
		t.Fatalf("Aggregate() err: %v", err)
	}
	if res.TotalIncomeIDR != 200000 {
		t.Errorf("TotalIncomeIDR = %d, want 200000", res.TotalIncomeIDR)
	}
	if res.DuesIncomeIDR != 0 {
		t.Errorf("DuesIncomeIDR = %d, want 0", res.DuesIncomeIDR)
	}
	if res.TotalExpenditureIDR != 75000 {
		t.Errorf("TotalExpenditureIDR = %d, want 75000", res.TotalExpenditureIDR)
	}
	if res.ClosingBalanceIDR != 125000 {
		t.Errorf("ClosingBalanceIDR = %d, want 125000", res.ClosingBalanceIDR)
	}
}

// Skenario: satu pemakaian bertanggal rusak di antara dua yang valid.
func TestAggregate_SkipAndCount(t *testing.T) {
	agg := newTestAggregator(
		nil, nil,
		[]Expenditure{
			{ID: uuid.New(), AmountIDR: 10000, OccurredAt: wib(2024, 2, 1, 8)},
			{ID: uuid.New(), AmountIDR: 20000, OccurredAt: wib(2024, 2, 5, 8)},
			{ID: uuid.New(), AmountIDR: 99999}, // OccurredAt zero → rusak
		},
	)

	res, err := agg.Aggregate(context.Background(), "2024-02", Scope{})
	if err != nil {
		t.Fatalf("record rusak tidak boleh menggagalkan agregasi: %v", err)
	}
	if res.TotalExpenditureIDR != 30000 {
		t.Errorf("TotalExpenditureIDR = %d, want 30000", res.TotalExpenditureIDR)
	}
	if res.SkippedCount != 1 {
		t.Errorf("SkippedCount = %d, want 1", res.SkippedCount)
	}
}

// Tagihan dengan period rusak juga di-skip + dihitung.
func TestAggregate_SkipMalformedChargePeriod(t *testing.T) {
	santri := uuid.New()
	agg := newTestAggregator(
		[]DuesCharge{
			{ID: uuid.New(), SantriID: santri, Period: "2024-01", AmountIDR: 50000, Paid: true},
			{ID: uuid.New(), SantriID: santri, Period: "bukan-period", AmountIDR: 50000, Paid: true},
		},
		nil, nil,
	)

	res, err := agg.Aggregate(context.Background(), PeriodAll, Scope{})
	if err != nil {
		t.Fatalf("Aggregate() err: %v", err)
	}
	if res.DuesIncomeIDR != 50000 || res.SkippedCount != 1 {
		t.Errorf("got dues=%d skipped=%d, want 50000/1", res.DuesIncomeIDR, res.SkippedCount)
	}
}

// Invariant aditivitas: total = syahriah + donasi, saldo = total - pemakaian.
func TestAggregate_Additivity(t *testing.T) {
	santri := uuid.New()
	agg := newTestAggregator(
		[]DuesCharge{
			{ID: uuid.New(), SantriID: santri, Period: "2024-01", AmountIDR: 150000, Paid: true},
			{ID: uuid.New(), SantriID: santri, Period: "2024-02", AmountIDR: 150000, Paid: true},
		},
		[]Donation{
			{ID: uuid.New(), AmountIDR: 500000, PaidAt: wib(2024, 1, 3, 10)},
			{ID: uuid.New(), AmountIDR: 250000, PaidAt: wib(2024, 2, 3, 10)},
		},
		[]Expenditure{
			{ID: uuid.New(), AmountIDR: 400000, OccurredAt: wib(2024, 1, 25, 16)},
		},
	)

	for _, period := range []Period{PeriodAll, "2024-01", "2024-02"} {
		res, err := agg.Aggregate(context.Background(), period, Scope{})
		if err != nil {
			t.Fatalf("Aggregate(%s) err: %v", period, err)
		}
		if res.TotalIncomeIDR != res.DuesIncomeIDR+res.DonationIncomeIDR {
			t.Errorf("period %s: total %d != dues %d + donasi %d",
				period, res.TotalIncomeIDR, res.DuesIncomeIDR, res.DonationIncomeIDR)
		}
		if res.ClosingBalanceIDR != res.TotalIncomeIDR-res.TotalExpenditureIDR {
			t.Errorf("period %s: saldo %d != pemasukan %d - pemakaian %d",
				period, res.ClosingBalanceIDR, res.TotalIncomeIDR, res.TotalExpenditureIDR)
		}
	}
}

// Properti partisi: aggregate(all) = jumlah aggregate per periode.
func TestAggregate_PartitionOverPeriods(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	agg := newTestAggregator(
		[]DuesCharge{
			{ID: uuid.New(), SantriID: s1, Period: "2024-01", AmountIDR: 50000, Paid: true},
			{ID: uuid.New(), SantriID: s2, Period: "2024-01", AmountIDR: 60000, Paid: true},
			{ID: uuid.New(), SantriID: s1, Period: "2024-02", AmountIDR: 50000, Paid: true},
			{ID: uuid.New(), SantriID: s2, Period: "2024-03", AmountIDR: 60000, Paid: false},
		},
		[]Donation{
			{ID: uuid.New(), AmountIDR: 100000, PaidAt: wib(2024, 1, 10, 11)},
			{ID: uuid.New(), AmountIDR: 300000, PaidAt: wib(2024, 3, 12, 11)},
		},
		[]Expenditure{
			{ID: uuid.New(), AmountIDR: 80000, OccurredAt: wib(2024, 2, 14, 13)},
			{ID: uuid.New(), AmountIDR: 120000, OccurredAt: wib(2024, 3, 14, 13)},
		},
	)

	all, err := agg.Aggregate(context.Background(), PeriodAll, Scope{})
	if err != nil {
		t.Fatalf("Aggregate(all) err: %v", err)
	}

	var sum Result
	for _, period := range []Period{"2024-01", "2024-02", "2024-03"} {
		res, err := agg.Aggregate(context.Background(), period, Scope{})
		if err != nil {
			t.Fatalf("Aggregate(%s) err: %v", period, err)
		}
		sum.DuesIncomeIDR += res.DuesIncomeIDR
		sum.DonationIncomeIDR += res.DonationIncomeIDR
		sum.TotalIncomeIDR += res.TotalIncomeIDR
		sum.TotalExpenditureIDR += res.TotalExpenditureIDR
		sum.ClosingBalanceIDR += res.ClosingBalanceIDR
	}

	if sum.DuesIncomeIDR != all.DuesIncomeIDR ||
		sum.DonationIncomeIDR != all.DonationIncomeIDR ||
		sum.TotalIncomeIDR != all.TotalIncomeIDR ||
		sum.TotalExpenditureIDR != all.TotalExpenditureIDR ||
		sum.ClosingBalanceIDR != all.ClosingBalanceIDR {
		t.Errorf("partisi tidak cocok:\n all = %+v\n sum = %+v", all, sum)
	}
}

// Scope wali hanya membatasi syahriah, bukan donasi/pemakaian.
func TestAggregate_ScopeOnlyRestrictsDues(t *testing.T) {
	mine, other := uuid.New(), uuid.New()
	agg := newTestAggregator(
		[]DuesCharge{
			{ID: uuid.New(), SantriID: mine, Period: "2024-01", AmountIDR: 50000, Paid: true},
			{ID: uuid.New(), SantriID: other, Period: "2024-01", AmountIDR: 70000, Paid: true},
		},
		[]Donation{{ID: uuid.New(), AmountIDR: 100000, PaidAt: wib(2024, 1, 5, 9)}},
		[]Expenditure{{ID: uuid.New(), AmountIDR: 40000, OccurredAt: wib(2024, 1, 6, 9)}},
	)

	res, err := agg.Aggregate(context.Background(), "2024-01", Scope{SantriIDs: []uuid.UUID{mine}})
	if err != nil {
		t.Fatalf("Aggregate() err: %v", err)
	}
	if res.DuesIncomeIDR != 50000 {
		t.Errorf("DuesIncomeIDR = %d, want hanya milik sendiri 50000", res.DuesIncomeIDR)
	}
	if res.DonationIncomeIDR != 100000 {
		t.Errorf("DonationIncomeIDR = %d, donasi tidak boleh ikut ke-scope", res.DonationIncomeIDR)
	}
	if res.TotalExpenditureIDR != 40000 {
		t.Errorf("TotalExpenditureIDR = %d, pemakaian tidak boleh ikut ke-scope", res.TotalExpenditureIDR)
	}
}

// Satu sumber mati → seluruh agregasi batal, bukan angka sebagian.
func TestAggregate_SourceUnavailable(t *testing.T) {
	agg := &Aggregator{
		Dues:         &fakeDues{err: errors.New("connection refused")},
		Donations:    &fakeDonations{},
		Expenditures: &fakeExpenditures{},
	}

	_, err := agg.Aggregate(context.Background(), PeriodAll, Scope{})
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("err = %v, want ErrSourceUnavailable", err)
	}
}

// Filter periode dengan format rusak ditolak sebelum scan.
func TestAggregate_RejectsMalformedFilter(t *testing.T) {
	agg := newTestAggregator(nil, nil, nil)
	if _, err := agg.Aggregate(context.Background(), "2024/02", Scope{}); err == nil {
		t.Fatal("filter periode rusak harus error")
	}
}
