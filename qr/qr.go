// Package qr renders public menu URLs as scannable images.
package qr

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// DataURL encodes url into a PNG QR code (medium error correction,
// quiet-zone border included) and returns it as an inline data URL.
func DataURL(url string, size int) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
