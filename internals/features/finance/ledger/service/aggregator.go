package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Scope membatasi tagihan syahriah ke santri tertentu (dashboard wali).
// Donasi & pemakaian selalu milik lembaga, tidak pernah di-scope.
type Scope struct {
	SantriIDs []uuid.UUID
}

// Result = hasil agregasi satu periode (atau semua periode).
// Semua nominal integer rupiah; tidak ada floating point di jalur ini.
type Result struct {
	DuesIncomeIDR       int64 `json:"dues_income_idr"`
	DonationIncomeIDR   int64 `json:"donation_income_idr"`
	TotalIncomeIDR      int64 `json:"total_income_idr"`
	TotalExpenditureIDR int64 `json:"total_expenditure_idr"`
	ClosingBalanceIDR   int64 `json:"closing_balance_idr"`

	// SkippedCount = jumlah record rusak yang dilewati (diagnostik).
	SkippedCount int `json:"skipped_count"`
}

const defaultSourceTimeout = 10 * time.Second

// Aggregator menghitung ulang saldo dari tiga sumber transaksi.
// Satu-satunya tempat logika ini hidup — dashboard wali dan admin
// dua-duanya lewat sini supaya angkanya tidak bisa beda.
type Aggregator struct {
	Dues         DuesSource
	Donations    DonationSource
	Expenditures ExpenditureSource

	// Timeout membatasi scan tiga sumber; 0 = defaultSourceTimeout.
	Timeout time.Duration
}

// Aggregate menghitung pemasukan syahriah, pemasukan donasi, total
// pemasukan, total pemakaian, dan saldo untuk filter periode yang diminta.
//
// Tagihan unpaid tidak pernah dihitung sebagai pemasukan. Record dengan
// tanggal/nominal rusak di-skip dan dihitung di SkippedCount. Kalau satu
// sumber gagal dibaca total, seluruh agregasi dibatalkan dengan
// ErrSourceUnavailable.
func (a *Aggregator) Aggregate(ctx context.Context, period Period, scope Scope) (Result, error) {
	if !period.IsAll() {
		p, err := ParsePeriod(string(period))
		if err != nil {
			return Result{}, err
		}
		period = p
	}

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = defaultSourceTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Tiga sumber independen → scan paralel, join sebelum reduce.
	var (
		charges      []DuesCharge
		donations    []Donation
		expenditures []Expenditure
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := a.Dues.ListCharges(gctx, scope.SantriIDs)
		if err != nil {
			return fmt.Errorf("%w: syahriah: %v", ErrSourceUnavailable, err)
		}
		charges = rows
		return nil
	})
	g.Go(func() error {
		rows, err := a.Donations.ListSettled(gctx)
		if err != nil {
			return fmt.Errorf("%w: donasi: %v", ErrSourceUnavailable, err)
		}
		donations = rows
		return nil
	})
	g.Go(func() error {
		rows, err := a.Expenditures.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("%w: pemakaian: %v", ErrSourceUnavailable, err)
		}
		expenditures = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var res Result

	for _, ch := range charges {
		if !ch.Paid {
			// unpaid = piutang, bukan pemasukan
			continue
		}
		if ch.AmountIDR < 0 {
			res.SkippedCount++
			continue
		}
		p, err := ParsePeriod(ch.Period)
		if err != nil {
			res.SkippedCount++
			continue
		}
		if !period.IsAll() && p != period {
			continue
		}
		res.DuesIncomeIDR += ch.AmountIDR
	}

	for _, d := range donations {
		if d.AmountIDR < 0 {
			res.SkippedCount++
			continue
		}
		p, err := PeriodOf(d.PaidAt)
		if err != nil {
			res.SkippedCount++
			continue
		}
		if !period.IsAll() && p != period {
			continue
		}
		res.DonationIncomeIDR += d.AmountIDR
	}

	for _, e := range expenditures {
		if e.AmountIDR < 0 {
			res.SkippedCount++
			continue
		}
		p, err := PeriodOf(e.OccurredAt)
		if err != nil {
			res.SkippedCount++
			continue
		}
		if !period.IsAll() && p != period {
			continue
		}
		res.TotalExpenditureIDR += e.AmountIDR
	}

	res.TotalIncomeIDR = res.DuesIncomeIDR + res.DonationIncomeIDR
	res.ClosingBalanceIDR = res.TotalIncomeIDR - res.TotalExpenditureIDR
	return res, nil
}
