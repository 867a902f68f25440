package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/finance/donations/model"
)

func pendingDonation(amount int64) *model.DonationModel {
	return &model.DonationModel{
		DonationID:        uuid.New(),
		DonationOrderID:   "DONATION-1",
		DonationAmountIDR: amount,
		DonationStatus:    model.DonationStatusPending,
	}
}

func TestApplyGatewayStatus_Settlement(t *testing.T) {
	d := pendingDonation(200000)
	now := time.Date(2024, 2, 20, 9, 0, 0, 0, time.UTC)

	if !applyGatewayStatus(d, "settlement", "bank_transfer", now) {
		t.Fatal("settlement pada donasi pending harus mengubah state")
	}
	if d.DonationStatus != model.DonationStatusPaid {
		t.Errorf("status = %s, want paid", d.DonationStatus)
	}
	if d.DonationPaidAt == nil || !d.DonationPaidAt.Equal(now) {
		t.Errorf("paid_at = %v, want %v", d.DonationPaidAt, now)
	}
	if d.DonationPaymentMethod != "bank_transfer" {
		t.Errorf("payment_method = %s", d.DonationPaymentMethod)
	}
}

// Skenario: Midtrans mengirim ulang settlement untuk order yang sama —
// bahkan setelah ganti bulan. Notifikasi kedua harus no-op supaya
// paid_at (dan bucket periode pemasukannya) tidak bergeser.
func TestApplyGatewayStatus_SettlementIdempotent(t *testing.T) {
	d := pendingDonation(200000)
	first := time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC)
	redelivered := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	if !applyGatewayStatus(d, "settlement", "gopay", first) {
		t.Fatal("settlement pertama harus mengubah state")
	}
	if applyGatewayStatus(d, "settlement", "gopay", redelivered) {
		t.Fatal("settlement kedua harus no-op")
	}
	if !d.DonationPaidAt.Equal(first) {
		t.Errorf("paid_at bergeser ke %v, harus tetap %v", d.DonationPaidAt, first)
	}
}

// Notifikasi expire/cancel yang telat tidak boleh menurunkan donasi
// yang sudah paid.
func TestApplyGatewayStatus_NoDowngradeAfterPaid(t *testing.T) {
	d := pendingDonation(100000)
	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)
	applyGatewayStatus(d, "settlement", "qris", now)

	for _, status := range []string{"expire", "cancel", "deny"} {
		if applyGatewayStatus(d, status, "", now.Add(time.Hour)) {
			t.Errorf("%s setelah paid harus no-op", status)
		}
	}
	if d.DonationStatus != model.DonationStatusPaid {
		t.Errorf("status = %s, want paid", d.DonationStatus)
	}
}

func TestApplyGatewayStatus_ExpireAndUnknown(t *testing.T) {
	d := pendingDonation(50000)
	now := time.Now()

	if applyGatewayStatus(d, "pending", "", now) {
		t.Error("status tidak dikenal harus no-op")
	}
	if !applyGatewayStatus(d, "expire", "", now) {
		t.Fatal("expire pada donasi pending harus mengubah state")
	}
	if d.DonationStatus != model.DonationStatusExpired {
		t.Errorf("status = %s, want expired", d.DonationStatus)
	}
}
