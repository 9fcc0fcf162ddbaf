package service

import (
	"github.com/google/uuid"
)

// QRCodeService generates and parses order handoff QR codes.
type QRCodeService interface {
	// GenerateOrderHandoffQR renders a PNG QR code identifying the order.
	GenerateOrderHandoffQR(orderID uuid.UUID, reference string) ([]byte, error)

	// ParseOrderHandoffQR returns the order ID carried by scanned QR data.
	ParseOrderHandoffQR(qrData string) (uuid.UUID, error)
}
