package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

/* ==============================================
   ROW TYPES — bentuk minimum yang dibutuhkan
   agregasi, lepas dari model GORM per fitur
============================================== */

// DuesCharge = satu tagihan syahriah (santri, periode).
type DuesCharge struct {
	ID        uuid.UUID
	SantriID  uuid.UUID
	Period    string // YYYY-MM, periode tagihan (bukan tanggal bayar)
	AmountIDR int64
	Paid      bool
	PaidAt    *time.Time
}

// Donation = donasi yang sudah settle (pending tidak pernah sampai ke sini).
type Donation struct {
	ID        uuid.UUID
	AmountIDR int64
	PaidAt    time.Time
}

// Expenditure = pemakaian dana, di-bucket berdasarkan tanggal pemakaian.
type Expenditure struct {
	ID         uuid.UUID
	AmountIDR  int64
	OccurredAt time.Time
}

/* ==============================================
   SOURCE INTERFACES — dipenuhi oleh implementasi
   GORM di gorm_sources.go dan fake di test
============================================== */

type DuesSource interface {
	// ListCharges mengembalikan seluruh tagihan; kalau santriIDs tidak
	// kosong, hasil dibatasi milik santri tersebut (scope wali).
	ListCharges(ctx context.Context, santriIDs []uuid.UUID) ([]DuesCharge, error)
}

type DonationSource interface {
	ListSettled(ctx context.Context) ([]Donation, error)
}

type ExpenditureSource interface {
	ListAll(ctx context.Context) ([]Expenditure, error)
}

type SnapshotSource interface {
	// GetSnapshot mengembalikan ErrSnapshotNotFound jika baris belum ada.
	GetSnapshot(ctx context.Context, period Period, category Category) (Snapshot, error)
}
