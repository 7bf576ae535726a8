package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCafeShareQR generates a QR code that deep-links to a cafe listing
	GenerateCafeShareQR(cafeID uuid.UUID) ([]byte, error)

	// ParseCafeShareQR parses QR code data and returns the cafe ID
	ParseCafeShareQR(qrData string) (uuid.UUID, error)
}
