package dto

/* ===================== REQUESTS ===================== */

type CreateSyahriahRequest struct {
	SyahriahSantriID  string `json:"syahriah_santri_id" validate:"required,uuid"`
	SyahriahPeriod    string `json:"syahriah_period" validate:"required,len=7"` // YYYY-MM
	SyahriahAmountIDR int64  `json:"syahriah_amount_idr" validate:"required,gt=0"`
}

// Generate tagihan massal: satu periode, satu nominal untuk semua santri aktif
type GenerateSyahriahRequest struct {
	Period    string `json:"period" validate:"required,len=7"` // YYYY-MM
	AmountIDR int64  `json:"amount_idr" validate:"required,gt=0"`
}

// Admin menandai lunas (setoran tunai). paid_at opsional, default sekarang.
type MarkPaidRequest struct {
	PaidAt string `json:"paid_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Note   string `json:"note" validate:"omitempty,max=500"`
}
