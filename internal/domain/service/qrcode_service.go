package service

// ParcelQRData is the payload encoded into a parcel QR code.
type ParcelQRData struct {
	TrackingNumber string `json:"trackingNumber"`
	ParcelID       uint   `json:"parcelId"`
	Type           string `json:"type"`
}

// QRCodeService generates and parses parcel QR codes.
type QRCodeService interface {
	// GenerateParcelQR renders the QR payload for a parcel as a base64 PNG
	// data URL suitable for embedding in a web page.
	GenerateParcelQR(parcelID uint, trackingNumber string) (string, error)

	// ParseParcelQR decodes a scanned QR payload. The returned data is
	// syntactically valid but not yet checked against the database.
	ParseParcelQR(qrData string) (*ParcelQRData, error)
}
