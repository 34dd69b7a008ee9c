package payments

import (
	"time"

	"subshop-backend/internal/domain/payments"
)

// Wallet is the destination for one crypto rail. Addresses live in
// configuration only and are resolved per request; they are never
// stored on a payment record.
type Wallet struct {
	Address  string
	Currency string
	Network  string
}

// Config is injected into the payments service at construction so the
// workflow can be tested without touching process environment.
type Config struct {
	Wallets      map[payments.Method]Wallet
	Window       time.Duration
	FiatCurrency string
	Warnings     []string
}

// DefaultWarnings is the static risk notice attached to every created
// payment request.
func DefaultWarnings() []string {
	return []string{
		"Send exactly the specified amount, otherwise the payment cannot be matched.",
		"The payment window closes 30 minutes after creation.",
		"Double-check the network before sending: funds sent over the wrong network are lost.",
		"Submit the transaction hash after sending to speed up confirmation.",
	}
}
