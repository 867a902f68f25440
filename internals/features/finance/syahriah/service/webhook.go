package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order ID pembayaran syahriah online: SYAHRIAH-<syahriah_id>-<nano>
const orderIDPrefix = "SYAHRIAH-"

func BuildOrderID(chargeID uuid.UUID) string {
	return fmt.Sprintf("%s%s-%d", orderIDPrefix, chargeID, time.Now().UnixNano())
}

func parseOrderID(orderID string) (uuid.UUID, error) {
	if !strings.HasPrefix(orderID, orderIDPrefix) {
		return uuid.Nil, fmt.Errorf("syahriah: order_id bukan pembayaran syahriah: %s", orderID)
	}
	parts := strings.Split(strings.TrimPrefix(orderID, orderIDPrefix), "-")
	// uuid sendiri mengandung 5 segmen dash
	if len(parts) < 5 {
		return uuid.Nil, fmt.Errorf("syahriah: order_id tidak valid: %s", orderID)
	}
	return uuid.Parse(strings.Join(parts[:5], "-"))
}

// HandleSyahriahStatusWebhook memproses notifikasi Midtrans untuk
// pembayaran syahriah. Settlement → MarkPaid (idempotent: notifikasi
// Midtrans bisa datang berkali-kali untuk order yang sama).
func HandleSyahriahStatusWebhook(ctx context.Context, db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook syahriah tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	chargeID, err := parseOrderID(orderID)
	if err != nil {
		return err
	}

	switch status {
	case "capture", "settlement":
		if _, err := NewPaymentService(db).MarkPaid(ctx, chargeID, time.Now(), "midtrans"); err != nil {
			log.Println("[ERROR] Gagal menandai syahriah lunas:", err)
			return err
		}
		log.Printf("[INFO] Syahriah %s lunas via midtrans (order %s)", chargeID, orderID)
	default:
		// pending/expire/cancel: tagihan tetap unpaid, wali bisa bayar ulang
		log.Println("[INFO] Status syahriah tidak diproses:", status)
	}
	return nil
}
