package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// DefaultQRGenerator encodes the pickup tracking link for an order.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/commande/%s", g.BaseURL, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
