package qr

import (
	"encoding/base64"
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrRender means the payload could not be encoded into a QR image.
var ErrRender = errors.New("qr render failed")

const imageSize = 256

// Renderer turns a payment payload into a PNG QR code delivered as a
// data URL, ready to drop into an <img> tag.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) DataURL(payload string) (string, error) {
	if payload == "" {
		return "", fmt.Errorf("%w: empty payload", ErrRender)
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, imageSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
