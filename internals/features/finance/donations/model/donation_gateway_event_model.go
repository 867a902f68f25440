package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DonationGatewayEventModel menyimpan payload mentah notifikasi Midtrans
// (audit trail — status donasi bisa ditelusuri balik ke notifikasinya)
type DonationGatewayEventModel struct {
	DonationGatewayEventID uuid.UUID `gorm:"column:donation_gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donation_gateway_event_id"`

	DonationGatewayEventOrderID string         `gorm:"column:donation_gateway_event_order_id;type:varchar(100);not null;index" json:"donation_gateway_event_order_id"`
	DonationGatewayEventStatus  string         `gorm:"column:donation_gateway_event_status;type:varchar(50)" json:"donation_gateway_event_status"`
	DonationGatewayEventPayload datatypes.JSON `gorm:"column:donation_gateway_event_payload;type:jsonb" json:"donation_gateway_event_payload"`

	DonationGatewayEventCreatedAt time.Time `gorm:"column:donation_gateway_event_created_at;autoCreateTime" json:"donation_gateway_event_created_at"`
}

func (DonationGatewayEventModel) TableName() string { return "donation_gateway_events" }
