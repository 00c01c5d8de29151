// Package qr renders claim payloads into PNG images for the coupon modal.
package qr

import (
	"encoding/base64"

	"zavvi-web/internal/pkg/errs"

	qrcode "github.com/skip2/go-qrcode"
)

const DefaultSize = 300

// PNG encodes payload as-is. The payload string is the exact scan content.
func PNG(payload string, size int) ([]byte, error) {
	if payload == "" {
		return nil, errs.New("qr: empty payload")
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, size)
	if err != nil {
		return nil, errs.Wrap(err, "qr: encode")
	}
	return png, nil
}

// DataURL is PNG wrapped for direct use as an <img> src.
func DataURL(payload string, size int) (string, error) {
	png, err := PNG(payload, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
