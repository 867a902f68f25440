package dto

/* ===================== REQUESTS ===================== */

// Donasi online (publik / wali login): lewat Midtrans Snap
type CreateDonationRequest struct {
	DonationName      string `json:"donation_name" validate:"required,min=2,max=50"`
	DonationEmail     string `json:"donation_email" validate:"required,email"`
	DonationMessage   string `json:"donation_message" validate:"omitempty,max=500"`
	DonationAmountIDR int64  `json:"donation_amount_idr" validate:"required,gt=0"`
}

// Entri manual admin (donasi tunai/transfer yang sudah diterima)
type CreateManualDonationRequest struct {
	DonationName      string `json:"donation_name" validate:"required,min=2,max=50"`
	DonationMessage   string `json:"donation_message" validate:"omitempty,max=500"`
	DonationAmountIDR int64  `json:"donation_amount_idr" validate:"required,gt=0"`
	// Waktu diterima; kosong = sekarang
	DonationPaidAt string `json:"donation_paid_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}
