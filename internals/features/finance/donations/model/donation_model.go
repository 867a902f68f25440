package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   ENUM — status donasi
============================== */

type DonationStatus string

const (
	DonationStatusPending  DonationStatus = "pending"
	DonationStatusPaid     DonationStatus = "paid"
	DonationStatusExpired  DonationStatus = "expired"
	DonationStatusCanceled DonationStatus = "canceled"
)

type DonationModel struct {
	DonationID uuid.UUID `gorm:"column:donation_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_id"`

	// Wali yang login (opsional, donasi bisa guest)
	DonationUserID *uuid.UUID `gorm:"column:donation_user_id;type:uuid;index" json:"donation_user_id,omitempty"`

	DonationName      string `gorm:"column:donation_name;type:varchar(50);not null" json:"donation_name"`
	DonationAmountIDR int64  `gorm:"column:donation_amount_idr;type:bigint;not null;check:donation_amount_idr > 0" json:"donation_amount_idr"`
	DonationMessage   string `gorm:"column:donation_message;type:text" json:"donation_message"`

	// Hanya donasi paid yang dihitung sebagai pemasukan
	DonationStatus DonationStatus `gorm:"column:donation_status;type:varchar(20);not null;default:'pending';index" json:"donation_status"`

	DonationOrderID string `gorm:"column:donation_order_id;type:varchar(100);not null;unique" json:"donation_order_id"`

	// "midtrans" untuk online, "manual" untuk entri admin
	DonationPaymentGateway string `gorm:"column:donation_payment_gateway;type:varchar(50);default:'midtrans'" json:"donation_payment_gateway"`
	DonationPaymentToken   string `gorm:"column:donation_payment_token;type:text" json:"donation_payment_token,omitempty"`
	DonationPaymentMethod  string `gorm:"column:donation_payment_method;type:varchar(50)" json:"donation_payment_method,omitempty"`

	// paid_at = waktu settle; dipakai sebagai bucket periode pemasukan
	DonationPaidAt *time.Time `gorm:"column:donation_paid_at;index" json:"donation_paid_at,omitempty"`

	DonationCreatedAt time.Time      `gorm:"column:donation_created_at;autoCreateTime" json:"donation_created_at"`
	DonationUpdatedAt time.Time      `gorm:"column:donation_updated_at;autoUpdateTime" json:"donation_updated_at"`
	DonationDeletedAt gorm.DeletedAt `gorm:"column:donation_deleted_at;index" json:"-"`
}

func (DonationModel) TableName() string { return "donations" }
