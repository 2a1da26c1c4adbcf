package qrcode

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"courier/config"
	"courier/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const parcelQRType = "parcel"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	levelName := "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			levelName = cfg.QRCode.ErrorCorrectionLevel
		}
	}

	var level qrcode.RecoveryLevel
	switch levelName {
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

// GenerateParcelQR renders the QR payload for a parcel as a base64 PNG data URL.
func (s *qrcodeService) GenerateParcelQR(parcelID uint, trackingNumber string) (string, error) {
	data := service.ParcelQRData{
		TrackingNumber: trackingNumber,
		ParcelID:       parcelID,
		Type:           parcelQRType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes), nil
}

// ParseParcelQR decodes a scanned QR payload.
func (s *qrcodeService) ParseParcelQR(qrData string) (*service.ParcelQRData, error) {
	var data service.ParcelQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != parcelQRType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.TrackingNumber == "" {
		return nil, fmt.Errorf("QR code carries no tracking number")
	}

	return &data, nil
}
