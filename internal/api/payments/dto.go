package payments

// ---------- requests

type CreatePaymentInput struct {
	CartItems     []uint `json:"cartItems" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type ConfirmPaymentInput struct {
	TxHash string `json:"txHash" binding:"required"`
}

// ---------- responses

type CreatePaymentResponse struct {
	PaymentID     string   `json:"paymentId"`
	WalletAddress string   `json:"walletAddress"`
	AmountRub     int64    `json:"amountRub"` // minor units (kopecks)
	AmountCrypto  string   `json:"amountCrypto"`
	Currency      string   `json:"currency"`
	QRCode        string   `json:"qrCode"` // data URL
	ExpiresAt     string   `json:"expiresAt"`
	Network       string   `json:"network"`
	Warnings      []string `json:"warnings"`
}

type StatusResponse struct {
	Status    string  `json:"status"`
	TxHash    *string `json:"txHash"`
	ExpiresAt *string `json:"expiresAt"`
	TimeLeft  int64   `json:"timeLeft"`
}

type ConfirmedPayment struct {
	ID     string  `json:"id"`
	Status string  `json:"status"`
	TxHash *string `json:"txHash"`
}

type ConfirmPaymentResponse struct {
	Payment ConfirmedPayment `json:"payment"`
}

type HistoryEntry struct {
	ID           string  `json:"id"`
	AmountRub    int64   `json:"amountRub"`
	AmountCrypto string  `json:"amountCrypto"`
	Currency     string  `json:"currency"`
	Network      string  `json:"network"`
	Method       string  `json:"method"`
	Status       string  `json:"status"`
	TxHash       *string `json:"txHash,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	ExpiresAt    string  `json:"expiresAt"`
}
