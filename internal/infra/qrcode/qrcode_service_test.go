package qrcode

import (
	"encoding/json"
	"strings"
	"testing"

	"courier/config"
	"courier/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) service.QRCodeService {
	return NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level},
	})
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateParcelQR(t *testing.T) {
	svc := newTestService(256, "M")

	dataURL, err := svc.GenerateParcelQR(17, "CPM-ABC123-XYZ999")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))
	assert.Greater(t, len(dataURL), len("data:image/png;base64,"))
}

func TestQRCodeService_ParseParcelQR(t *testing.T) {
	svc := newTestService(256, "M")

	payload, err := json.Marshal(service.ParcelQRData{
		TrackingNumber: "CPM-ABC123-XYZ999",
		ParcelID:       17,
		Type:           "parcel",
	})
	require.NoError(t, err)

	data, err := svc.ParseParcelQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "CPM-ABC123-XYZ999", data.TrackingNumber)
	assert.Equal(t, uint(17), data.ParcelID)
}

func TestQRCodeService_ParseParcelQR_Invalid(t *testing.T) {
	svc := newTestService(256, "M")

	tests := []struct {
		name   string
		qrData string
	}{
		{"Not JSON", "definitely not json"},
		{"Wrong type", `{"trackingNumber":"CPM-1-ABC","parcelId":1,"type":"subscription"}`},
		{"Missing tracking number", `{"parcelId":1,"type":"parcel"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := svc.ParseParcelQR(tt.qrData)
			assert.Error(t, err)
			assert.Nil(t, data)
		})
	}
}
