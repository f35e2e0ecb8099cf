package service

// QRCodeService renders QR codes for link redemption URLs
type QRCodeService interface {
	// Encode renders content as a PNG image.
	Encode(content string) ([]byte, error)
}
