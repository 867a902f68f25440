package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PemakaianModel = pemakaian dana lembaga. Semua pemakaian menarik dari
// dana gabungan (syahriah + donasi), tidak ada kategori sumber.
type PemakaianModel struct {
	PemakaianID uuid.UUID `gorm:"column:pemakaian_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pemakaian_id"`

	PemakaianTitle     string `gorm:"column:pemakaian_title;type:varchar(200);not null" json:"pemakaian_title"`
	PemakaianAmountIDR int64  `gorm:"column:pemakaian_amount_idr;type:bigint;not null;check:pemakaian_amount_idr > 0" json:"pemakaian_amount_idr"`
	PemakaianNote      string `gorm:"column:pemakaian_note;type:text" json:"pemakaian_note,omitempty"`

	// Tanggal pemakaian (wajib saat input) — inilah yang menentukan bucket
	// periode, bukan tanggal entri.
	PemakaianOccurredAt time.Time `gorm:"column:pemakaian_occurred_at;type:timestamptz;not null;index" json:"pemakaian_occurred_at"`

	PemakaianCreatedAt time.Time      `gorm:"column:pemakaian_created_at;autoCreateTime" json:"pemakaian_created_at"`
	PemakaianUpdatedAt time.Time      `gorm:"column:pemakaian_updated_at;autoUpdateTime" json:"pemakaian_updated_at"`
	PemakaianDeletedAt gorm.DeletedAt `gorm:"column:pemakaian_deleted_at;index" json:"-"`
}

func (PemakaianModel) TableName() string { return "pemakaian" }
