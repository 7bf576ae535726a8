package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"ngopi/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CafeID string `json:"cafe_id"`
	Type   string `json:"type"`
	URL    string `json:"url"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level; single letters and full words both work
	var level qrcode.RecoveryLevel
	switch strings.ToLower(errorCorrectionLevel) {
	case "l", "low":
		level = qrcode.Low
	case "m", "medium":
		level = qrcode.Medium
	case "q", "quartile":
		level = qrcode.High
	case "h", "high":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateCafeShareQR generates a QR code that deep-links to a cafe listing
func (s *qrcodeService) GenerateCafeShareQR(cafeID uuid.UUID) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		CafeID: cafeID.String(),
		Type:   "cafe_share",
		URL:    s.baseURL + "/cafes/" + cafeID.String(),
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCafeShareQR parses QR code data and returns the cafe ID
func (s *qrcodeService) ParseCafeShareQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "cafe_share" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Parse UUID
	cafeID, err := uuid.Parse(data.CafeID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse cafe ID: %w", err)
	}

	return cafeID, nil
}
