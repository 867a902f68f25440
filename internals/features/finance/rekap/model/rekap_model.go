package model

import (
	"time"

	"github.com/google/uuid"
)

// RekapModel = satu baris rekap keuangan per (periode, kategori).
// Di-overwrite setiap refresh, tidak pernah dihapus.
//
// Invariant kategori total: income = dues.income + donation.income,
// closing = income - expenditure. Dijaga oleh service refresh yang
// menulis ketiga baris dari satu hasil agregasi.
type RekapModel struct {
	RekapID uuid.UUID `gorm:"column:rekap_id;type:uuid;default:gen_random_uuid();primaryKey" json:"rekap_id"`

	RekapPeriod   string `gorm:"column:rekap_period;type:varchar(7);not null;uniqueIndex:uniq_rekap_period_category,priority:1" json:"rekap_period"`
	RekapCategory string `gorm:"column:rekap_category;type:varchar(20);not null;uniqueIndex:uniq_rekap_period_category,priority:2" json:"rekap_category"`

	RekapIncomeIDR      int64 `gorm:"column:rekap_income_idr;type:bigint;not null;default:0" json:"rekap_income_idr"`
	RekapExpenditureIDR int64 `gorm:"column:rekap_expenditure_idr;type:bigint;not null;default:0" json:"rekap_expenditure_idr"`
	RekapClosingIDR     int64 `gorm:"column:rekap_closing_idr;type:bigint;not null;default:0" json:"rekap_closing_idr"`

	RekapUpdatedAt time.Time `gorm:"column:rekap_updated_at;autoUpdateTime" json:"rekap_updated_at"`
}

func (RekapModel) TableName() string { return "rekap" }
