package payments

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"subshop-backend/internal/domain/cart"
	"subshop-backend/internal/domain/payments"
	"subshop-backend/internal/domain/subscriptions"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RateSource answers how many units of base buy one unit of quote.
type RateSource interface {
	Rate(ctx context.Context, base, quote string) (decimal.Decimal, error)
}

// QRRenderer encodes a payment payload into an image data URL.
type QRRenderer interface {
	DataURL(payload string) (string, error)
}

// Notifier is a fire-and-forget sink; implementations swallow their
// own failures.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// Store is the persistence boundary of the payment workflow.
type Store interface {
	// CartLines loads the given lines if they belong to userID, with
	// the product preloaded.
	CartLines(userID uint, lineIDs []uint) ([]cart.Line, error)
	CreatePayment(p *payments.PaymentRequest) error
	Payment(id string) (*payments.PaymentRequest, error)
	PaymentsByUser(userID uint) ([]payments.PaymentRequest, error)
	// Settle atomically transitions the payment from pending to
	// completed, creates the subscriptions, and clears the whole cart
	// of the payment's user. It returns ErrConflict when the payment
	// is no longer pending.
	Settle(p *payments.PaymentRequest, txHash string, subs []subscriptions.Subscription, completedAt time.Time) error
}

// Service implements the payment request builder, the status read and
// the settlement workflow on top of a Store and the external
// collaborators.
type Service struct {
	store    Store
	cfg      Config
	rates    RateSource
	qr       QRRenderer
	notifier Notifier

	now func() time.Time
}

func NewService(store Store, cfg Config, rates RateSource, qr QRRenderer, notifier Notifier) *Service {
	return &Service{
		store:    store,
		cfg:      cfg,
		rates:    rates,
		qr:       qr,
		notifier: notifier,
		now:      time.Now,
	}
}

// CreateResult is everything the client needs to pay: the persisted
// request plus the request-scoped bits that are never stored.
type CreateResult struct {
	Payment       *payments.PaymentRequest
	WalletAddress string
	QRCode        string
	Warnings      []string
}

// Create turns the given cart lines into a pending payment request.
// Nothing is persisted unless every step up to and including QR
// rendering succeeds.
func (s *Service) Create(ctx context.Context, userID uint, lineIDs []uint, method payments.Method) (*CreateResult, error) {
	if len(lineIDs) == 0 {
		return nil, fmt.Errorf("%w: cartItems must not be empty", ErrValidation)
	}
	if method == payments.MethodCard {
		return nil, ErrNotImplemented
	}
	wallet, ok := s.cfg.Wallets[method]
	if !ok || wallet.Address == "" {
		return nil, fmt.Errorf("%w: unsupported payment method %q", ErrValidation, method)
	}

	ids := dedupe(lineIDs)
	lines, err := s.store.CartLines(userID, ids)
	if err != nil {
		return nil, err
	}
	// All requested lines must belong to the user's live cart; a
	// partial match rejects the whole request.
	if len(lines) != len(ids) {
		return nil, fmt.Errorf("%w: cart item does not exist", ErrNotFound)
	}

	var totalMinor int64
	for _, line := range lines {
		totalMinor += line.PriceMinor * int64(line.Quantity)
	}

	rate, err := s.rates.Rate(ctx, s.cfg.FiatCurrency, wallet.Currency)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}
	amount := payments.ToCryptoAmount(totalMinor, rate)

	qrImage, err := s.qr.DataURL(wallet.Address + "?amount=" + amount.StringFixed(6))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQRRender, err)
	}

	snapshot := make(payments.Snapshot, 0, len(lines))
	for _, line := range lines {
		snapshot = append(snapshot, payments.SnapshotLine{
			LineID:    line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	now := s.now()
	p := &payments.PaymentRequest{
		ID:           uuid.NewString(),
		UserID:       userID,
		AmountMinor:  totalMinor,
		AmountCrypto: amount,
		Currency:     wallet.Currency,
		Network:      wallet.Network,
		Method:       method,
		Status:       payments.StatusPending,
		Snapshot:     datatypes.NewJSONType(snapshot),
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.cfg.Window),
	}

	if err := s.store.CreatePayment(p); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, fmt.Sprintf(
		"💸 New payment %s: %.2f RUB (%s %s %s) from user %d",
		p.ID, float64(totalMinor)/100, amount.StringFixed(6), wallet.Currency, wallet.Network, userID,
	))

	return &CreateResult{
		Payment:       p,
		WalletAddress: wallet.Address,
		QRCode:        qrImage,
		Warnings:      s.cfg.Warnings,
	}, nil
}

// StatusView is the externally visible state of a payment.
type StatusView struct {
	Status    payments.Status
	TxHash    *string
	ExpiresAt time.Time
	TimeLeft  int64
}

// Status is read-only. A payment whose window has passed still reads as
// pending here: expiry is advisory, there is no background sweeper and
// no transition happens on read.
func (s *Service) Status(id string) (*StatusView, error) {
	p, err := s.store.Payment(id)
	if err != nil {
		return nil, err
	}

	left := int64(p.ExpiresAt.Sub(s.now()).Seconds())
	if left < 0 {
		left = 0
	}

	return &StatusView{
		Status:    p.Status,
		TxHash:    p.TxHash,
		ExpiresAt: p.ExpiresAt,
		TimeLeft:  left,
	}, nil
}

// Confirm settles a pending payment: records the client-submitted tx
// hash (trusted as-is, there is no on-chain verification), creates one
// subscription per snapshot line still present in the live cart and
// clears the user's cart. All writes happen in one transaction, with
// a pending-state check so a concurrent confirm applies side effects
// exactly once.
func (s *Service) Confirm(ctx context.Context, id, txHash string) (*payments.PaymentRequest, error) {
	if strings.TrimSpace(txHash) == "" {
		return nil, fmt.Errorf("%w: txHash is required", ErrValidation)
	}

	p, err := s.store.Payment(id)
	if err != nil {
		return nil, err
	}
	if p.Status != payments.StatusPending {
		return nil, fmt.Errorf("%w: status is %s", ErrConflict, p.Status)
	}

	snapshot := p.Snapshot.Data()
	lineIDs := make([]uint, 0, len(snapshot))
	for _, sl := range snapshot {
		lineIDs = append(lineIDs, sl.LineID)
	}
	lines, err := s.store.CartLines(p.UserID, lineIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]cart.Line, len(lines))
	for _, line := range lines {
		byID[line.ID] = line
	}

	now := s.now()
	subs := make([]subscriptions.Subscription, 0, len(snapshot))
	skipped := 0
	for _, sl := range snapshot {
		line, ok := byID[sl.LineID]
		if !ok {
			// The cart may legitimately have been edited since the
			// payment was created; missing lines are skipped, never
			// a reason to fail the whole confirmation.
			skipped++
			continue
		}
		period := subscriptions.ComputePeriod(line.Product.Interval, now)
		subs = append(subs, subscriptions.Subscription{
			UserID:          p.UserID,
			ProductID:       sl.ProductID,
			Status:          subscriptions.StatusActive,
			StartDate:       period.Start,
			EndDate:         period.End,
			NextPaymentDate: period.NextPayment,
		})
	}
	if skipped > 0 {
		log.Printf("⚠️ payment %s: %d snapshot line(s) missing from cart, skipped", id, skipped)
	}

	if err := s.store.Settle(p, txHash, subs, now); err != nil {
		return nil, err
	}

	p.Status = payments.StatusCompleted
	p.TxHash = &txHash
	p.CompletedAt = &now

	s.notifier.Notify(ctx, fmt.Sprintf(
		"✅ Payment %s confirmed (tx %s), %d subscription(s) activated for user %d",
		p.ID, txHash, len(subs), p.UserID,
	))

	return p, nil
}

// History lists the user's payments, newest first.
func (s *Service) History(userID uint) ([]payments.PaymentRequest, error) {
	return s.store.PaymentsByUser(userID)
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
