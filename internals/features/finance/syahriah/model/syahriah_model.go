package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status tagihan syahriah
============================== */

type SyahriahStatus string

const (
	SyahriahStatusUnpaid SyahriahStatus = "unpaid"
	SyahriahStatusPaid   SyahriahStatus = "paid"
)

/* ==============================================
   MODEL — satu tagihan per (santri, periode)
============================================== */

type SyahriahModel struct {
	// PK
	SyahriahID uuid.UUID `gorm:"column:syahriah_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"syahriah_id"`

	// FK → santri(santri_id)
	SyahriahSantriID uuid.UUID `gorm:"column:syahriah_santri_id;type:uuid;not null;index;uniqueIndex:uniq_santri_period,priority:1" json:"syahriah_santri_id"`

	// Periode tagihan YYYY-MM (bulan penagihan, bukan tanggal bayar)
	SyahriahPeriod string `gorm:"column:syahriah_period;type:varchar(7);not null;index;uniqueIndex:uniq_santri_period,priority:2" json:"syahriah_period"`

	// Nominal rupiah bulat
	SyahriahAmountIDR int64 `gorm:"column:syahriah_amount_idr;type:bigint;not null;check:syahriah_amount_idr>=0" json:"syahriah_amount_idr"`

	// Status + waktu bayar. created_at dan paid_at sengaja dipisah:
	// paid_at terisi saat transisi ke paid, bukan saat tagihan dibuat.
	SyahriahStatus SyahriahStatus `gorm:"column:syahriah_status;type:varchar(20);not null;default:'unpaid';index" json:"syahriah_status"`
	SyahriahPaidAt *time.Time     `gorm:"column:syahriah_paid_at" json:"syahriah_paid_at,omitempty"`

	// Metode bayar terakhir (cash admin / midtrans) + catatan
	SyahriahPaymentMethod *string `gorm:"column:syahriah_payment_method;type:varchar(50)" json:"syahriah_payment_method,omitempty"`
	SyahriahNote          *string `gorm:"column:syahriah_note;type:text" json:"syahriah_note,omitempty"`

	// Audit
	SyahriahCreatedAt time.Time      `gorm:"column:syahriah_created_at;type:timestamptz;not null;default:now()" json:"syahriah_created_at"`
	SyahriahUpdatedAt time.Time      `gorm:"column:syahriah_updated_at;type:timestamptz;not null;default:now()" json:"syahriah_updated_at"`
	SyahriahDeletedAt gorm.DeletedAt `gorm:"column:syahriah_deleted_at;type:timestamptz;index" json:"-"`
}

func (SyahriahModel) TableName() string { return "syahriah" }

/* ======================================
   HOOKS — timestamps
====================================== */

func (m *SyahriahModel) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.SyahriahCreatedAt.IsZero() {
		m.SyahriahCreatedAt = now
	}
	m.SyahriahUpdatedAt = now
	if m.SyahriahStatus == "" {
		m.SyahriahStatus = SyahriahStatusUnpaid
	}
	return nil
}

func (m *SyahriahModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.SyahriahUpdatedAt = time.Now()
	return nil
}
