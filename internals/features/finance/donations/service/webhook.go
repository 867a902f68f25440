package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	donationModel "pesantrenku_backend/internals/features/finance/donations/model"
)

// applyGatewayStatus menerapkan status transaksi gateway ke satu donasi.
// Return false kalau state tidak berubah — pemanggil tidak perlu Save.
//
// Midtrans mengirim ulang notifikasi untuk order yang sama, jadi transisi
// harus idempotent: settlement kedua pada donasi yang sudah paid tidak
// boleh menggeser paid_at (paid_at menentukan bucket periode pemasukan).
// Donasi paid juga tidak boleh turun ke expired/canceled oleh notifikasi
// yang telat.
func applyGatewayStatus(donation *donationModel.DonationModel, status, paymentType string, now time.Time) bool {
	switch status {
	case "capture", "settlement":
		if donation.DonationStatus == donationModel.DonationStatusPaid {
			return false
		}
		donation.DonationStatus = donationModel.DonationStatusPaid
		donation.DonationPaidAt = &now
		if paymentType != "" {
			donation.DonationPaymentMethod = paymentType
		}
		return true
	case "expire":
		if donation.DonationStatus != donationModel.DonationStatusPending {
			return false
		}
		donation.DonationStatus = donationModel.DonationStatusExpired
		return true
	case "cancel", "deny":
		if donation.DonationStatus != donationModel.DonationStatusPending {
			return false
		}
		donation.DonationStatus = donationModel.DonationStatusCanceled
		return true
	default:
		return false
	}
}

// HandleDonationStatusWebhook dipanggil saat menerima notifikasi Midtrans
// untuk order donasi. Payload mentah selalu disimpan dulu sebagai event.
func HandleDonationStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	recordGatewayEvent(db, orderID, status, body)

	var donation donationModel.DonationModel
	if err := db.Where("donation_order_id = ?", orderID).First(&donation).Error; err != nil {
		log.Println("[ERROR] Donasi tidak ditemukan:", err)
		return fmt.Errorf("donation with order_id %s not found", orderID)
	}

	paymentType, _ := body["payment_type"].(string)
	if !applyGatewayStatus(&donation, status, paymentType, time.Now()) {
		log.Printf("[INFO] Notifikasi %s untuk order %s tidak mengubah status", status, orderID)
		return nil
	}

	if err := db.Save(&donation).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan status donasi:", err)
		return err
	}
	return nil
}

func recordGatewayEvent(db *gorm.DB, orderID, status string, body map[string]interface{}) {
	raw, err := json.Marshal(body)
	if err != nil {
		log.Println("[ERROR] Gagal marshal payload webhook:", err)
		return
	}
	event := donationModel.DonationGatewayEventModel{
		DonationGatewayEventOrderID: orderID,
		DonationGatewayEventStatus:  status,
		DonationGatewayEventPayload: datatypes.JSON(raw),
	}
	if err := db.Create(&event).Error; err != nil {
		log.Println("[ERROR] Gagal menyimpan gateway event:", err)
	}
}
