package dto

/* ===================== REQUESTS ===================== */

// occurred_at wajib — tanpa tanggal pemakaian record ditolak,
// tidak ada default diam-diam ke tanggal entri.
type CreatePemakaianRequest struct {
	PemakaianTitle      string `json:"pemakaian_title" validate:"required,min=3,max=200"`
	PemakaianAmountIDR  int64  `json:"pemakaian_amount_idr" validate:"required,gt=0"`
	PemakaianNote       string `json:"pemakaian_note" validate:"omitempty,max=1000"`
	PemakaianOccurredAt string `json:"pemakaian_occurred_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type UpdatePemakaianRequest struct {
	PemakaianTitle      *string `json:"pemakaian_title" validate:"omitempty,min=3,max=200"`
	PemakaianAmountIDR  *int64  `json:"pemakaian_amount_idr" validate:"omitempty,gt=0"`
	PemakaianNote       *string `json:"pemakaian_note" validate:"omitempty,max=1000"`
	PemakaianOccurredAt *string `json:"pemakaian_occurred_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}
