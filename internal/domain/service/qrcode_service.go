package service

// QRCodeService defines the interface for material label QR generation and parsing.
// Admins print the generated PNG on collection-point labels; collector devices
// scan it back into the identifier code consumed by the Collection Processor.
type QRCodeService interface {
	// GenerateMaterialLabel generates a QR code PNG embedding a material code.
	GenerateMaterialLabel(code string) ([]byte, error)

	// ParseMaterialLabel parses scanned QR payload data and returns the material code.
	ParseMaterialLabel(qrData string) (string, error)
}
