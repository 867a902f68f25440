package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ==============================================
   IMPLEMENTASI GORM — baca tabel fitur finance
   lewat Table() + select kolom (tanpa import
   silang model antar fitur)
============================================== */

type GormDuesSource struct{ DB *gorm.DB }

func (s GormDuesSource) ListCharges(ctx context.Context, santriIDs []uuid.UUID) ([]DuesCharge, error) {
	type row struct {
		ID        uuid.UUID  `gorm:"column:syahriah_id"`
		SantriID  uuid.UUID  `gorm:"column:syahriah_santri_id"`
		Period    string     `gorm:"column:syahriah_period"`
		AmountIDR int64      `gorm:"column:syahriah_amount_idr"`
		Status    string     `gorm:"column:syahriah_status"`
		PaidAt    *time.Time `gorm:"column:syahriah_paid_at"`
	}

	q := s.DB.WithContext(ctx).
		Table("syahriah").
		Select("syahriah_id, syahriah_santri_id, syahriah_period, syahriah_amount_idr, syahriah_status, syahriah_paid_at").
		Where("syahriah_deleted_at IS NULL")
	if len(santriIDs) > 0 {
		q = q.Where("syahriah_santri_id = ANY(?)", pq.Array(santriIDs))
	}

	var rows []row
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]DuesCharge, 0, len(rows))
	for _, r := range rows {
		out = append(out, DuesCharge{
			ID:        r.ID,
			SantriID:  r.SantriID,
			Period:    r.Period,
			AmountIDR: r.AmountIDR,
			Paid:      r.Status == "paid",
			PaidAt:    r.PaidAt,
		})
	}
	return out, nil
}

type GormDonationSource struct{ DB *gorm.DB }

func (s GormDonationSource) ListSettled(ctx context.Context) ([]Donation, error) {
	type row struct {
		ID        uuid.UUID  `gorm:"column:donation_id"`
		AmountIDR int64      `gorm:"column:donation_amount_idr"`
		PaidAt    *time.Time `gorm:"column:donation_paid_at"`
	}

	var rows []row
	if err := s.DB.WithContext(ctx).
		Table("donations").
		Select("donation_id, donation_amount_idr, donation_paid_at").
		Where("donation_status = ? AND donation_deleted_at IS NULL", "paid").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]Donation, 0, len(rows))
	for _, r := range rows {
		d := Donation{ID: r.ID, AmountIDR: r.AmountIDR}
		if r.PaidAt != nil {
			d.PaidAt = *r.PaidAt
		}
		// paid tanpa paid_at → PaidAt zero → di-skip + dihitung oleh aggregator
		out = append(out, d)
	}
	return out, nil
}

type GormExpenditureSource struct{ DB *gorm.DB }

func (s GormExpenditureSource) ListAll(ctx context.Context) ([]Expenditure, error) {
	type row struct {
		ID         uuid.UUID `gorm:"column:pemakaian_id"`
		AmountIDR  int64     `gorm:"column:pemakaian_amount_idr"`
		OccurredAt time.Time `gorm:"column:pemakaian_occurred_at"`
	}

	var rows []row
	if err := s.DB.WithContext(ctx).
		Table("pemakaian").
		Select("pemakaian_id, pemakaian_amount_idr, pemakaian_occurred_at").
		Where("pemakaian_deleted_at IS NULL").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]Expenditure, 0, len(rows))
	for _, r := range rows {
		out = append(out, Expenditure{ID: r.ID, AmountIDR: r.AmountIDR, OccurredAt: r.OccurredAt})
	}
	return out, nil
}

type GormSnapshotSource struct{ DB *gorm.DB }

func (s GormSnapshotSource) GetSnapshot(ctx context.Context, period Period, category Category) (Snapshot, error) {
	type row struct {
		Period         string    `gorm:"column:rekap_period"`
		Category       string    `gorm:"column:rekap_category"`
		IncomeIDR      int64     `gorm:"column:rekap_income_idr"`
		ExpenditureIDR int64     `gorm:"column:rekap_expenditure_idr"`
		ClosingIDR     int64     `gorm:"column:rekap_closing_idr"`
		UpdatedAt      time.Time `gorm:"column:rekap_updated_at"`
	}

	var r row
	err := s.DB.WithContext(ctx).
		Table("rekap").
		Select("rekap_period, rekap_category, rekap_income_idr, rekap_expenditure_idr, rekap_closing_idr, rekap_updated_at").
		Where("rekap_period = ? AND rekap_category = ?", string(period), string(category)).
		Take(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Snapshot{}, ErrSnapshotNotFound
		}
		return Snapshot{}, err
	}

	return Snapshot{
		Period:            Period(r.Period),
		Category:          Category(r.Category),
		IncomeIDR:         r.IncomeIDR,
		ExpenditureIDR:    r.ExpenditureIDR,
		ClosingBalanceIDR: r.ClosingIDR,
		UpdatedAt:         r.UpdatedAt,
	}, nil
}

// NewAggregator merangkai aggregator di atas tabel-tabel finance.
func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{
		Dues:         GormDuesSource{DB: db},
		Donations:    GormDonationSource{DB: db},
		Expenditures: GormExpenditureSource{DB: db},
	}
}

// NewReconciler merangkai reconciler di atas aggregator + tabel rekap.
func NewReconciler(db *gorm.DB) *Reconciler {
	return &Reconciler{
		Aggregator: NewAggregator(db),
		Snapshots:  GormSnapshotSource{DB: db},
	}
}
