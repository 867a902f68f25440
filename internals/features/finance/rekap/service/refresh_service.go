package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	ledger "pesantrenku_backend/internals/features/finance/ledger/service"
	"pesantrenku_backend/internals/features/finance/rekap/model"
)

// RefreshPeriod menghitung ulang agregat satu periode lalu upsert tiga
// baris rekap (dues, donation, total). Baris dues/donation hanya memuat
// pemasukan; pengeluaran ditarik dari kas gabungan sehingga hanya
// muncul di baris total.
func RefreshPeriod(ctx context.Context, db *gorm.DB, period ledger.Period) error {
	if period.IsAll() {
		return fmt.Errorf("rekap: periode 'all' tidak bisa di-snapshot")
	}

	agg := ledger.NewAggregator(db)
	res, err := agg.Aggregate(ctx, period, ledger.Scope{})
	if err != nil {
		return fmt.Errorf("rekap: agregasi periode %s gagal: %w", period, err)
	}

	rows := []model.RekapModel{
		{
			RekapPeriod:     string(period),
			RekapCategory:   string(ledger.CategoryDues),
			RekapIncomeIDR:  res.DuesIncomeIDR,
			RekapClosingIDR: res.DuesIncomeIDR,
		},
		{
			RekapPeriod:     string(period),
			RekapCategory:   string(ledger.CategoryDonation),
			RekapIncomeIDR:  res.DonationIncomeIDR,
			RekapClosingIDR: res.DonationIncomeIDR,
		},
		{
			RekapPeriod:         string(period),
			RekapCategory:       string(ledger.CategoryTotal),
			RekapIncomeIDR:      res.TotalIncomeIDR,
			RekapExpenditureIDR: res.TotalExpenditureIDR,
			RekapClosingIDR:     res.ClosingBalanceIDR,
		},
	}

	err = db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "rekap_period"}, {Name: "rekap_category"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"rekap_income_idr", "rekap_expenditure_idr", "rekap_closing_idr", "rekap_updated_at",
			}),
		}).
		Create(&rows).Error
	if err != nil {
		return fmt.Errorf("rekap: upsert periode %s gagal: %w", period, err)
	}
	return nil
}

// RefreshAll me-refresh semua periode yang pernah punya transaksi.
// Daftar periode diambil dari union tiga sumber; bucket pakai zona
// waktu lembaga supaya konsisten dengan agregator.
func RefreshAll(ctx context.Context, db *gorm.DB) error {
	var periods []string
	err := db.WithContext(ctx).Raw(`
		SELECT DISTINCT syahriah_period AS p FROM syahriah WHERE syahriah_deleted_at IS NULL
		UNION
		SELECT DISTINCT to_char(donation_paid_at AT TIME ZONE 'Asia/Jakarta', 'YYYY-MM')
			FROM donations WHERE donation_deleted_at IS NULL AND donation_status = 'paid' AND donation_paid_at IS NOT NULL
		UNION
		SELECT DISTINCT to_char(pemakaian_occurred_at AT TIME ZONE 'Asia/Jakarta', 'YYYY-MM')
			FROM pemakaian WHERE pemakaian_deleted_at IS NULL
		ORDER BY p
	`).Scan(&periods).Error
	if err != nil {
		return fmt.Errorf("rekap: scan daftar periode gagal: %w", err)
	}

	for _, raw := range periods {
		period, err := ledger.ParsePeriod(raw)
		if err != nil {
			log.Printf("[WARN] rekap: lewati periode tidak valid %q: %v", raw, err)
			continue
		}
		if err := RefreshPeriod(ctx, db, period); err != nil {
			return err
		}
	}
	return nil
}

// RefreshCurrent me-refresh periode berjalan saja (dipakai scheduler).
func RefreshCurrent(ctx context.Context, db *gorm.DB) error {
	return RefreshPeriod(ctx, db, ledger.CurrentPeriod(time.Now()))
}

// RefreshPeriodAsync me-refresh satu periode di background. Dipanggil
// setelah transaksi mengubah periode tertentu — pelunasan syahriah telat
// mendarat di periode lama yang tidak pernah disentuh tick scheduler
// (scheduler hanya memegang periode berjalan).
func RefreshPeriodAsync(db *gorm.DB, raw string) {
	period, err := ledger.ParsePeriod(raw)
	if err != nil {
		log.Printf("[WARN] rekap: periode %q tidak valid, refresh dilewati: %v", raw, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := RefreshPeriod(ctx, db, period); err != nil {
			log.Printf("[ERROR] rekap: refresh periode %s setelah transaksi gagal: %v", period, err)
		}
	}()
}
