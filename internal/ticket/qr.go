// Package ticket renders reservation artifacts: the QR code used as proof
// of booking and the printable PDF ticket.
package ticket

import qrcode "github.com/skip2/go-qrcode"

// qrSize is the edge length in pixels of generated QR images.
const qrSize = 256

// QRCodePNG encodes the given content (normally a reservation detail URL)
// into a PNG QR image with medium error correction.
func QRCodePNG(content string) ([]byte, error) {
    return qrcode.Encode(content, qrcode.Medium, qrSize)
}
