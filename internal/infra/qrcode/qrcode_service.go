package qrcode

import (
	"encoding/json"
	"fmt"

	"ecopoint/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the payload embedded in a material label.
type QRCodeData struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

const labelType = "material"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateMaterialLabel generates a QR code PNG embedding a material code.
func (s *qrcodeService) GenerateMaterialLabel(code string) ([]byte, error) {
	data := QRCodeData{
		Code: code,
		Type: labelType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseMaterialLabel parses scanned QR payload data and returns the material code.
func (s *qrcodeService) ParseMaterialLabel(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != labelType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.Code == "" {
		return "", fmt.Errorf("QR code carries no material code")
	}

	return data.Code, nil
}
