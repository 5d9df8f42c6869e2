// Package checkout runs the order and payment flow: server-side re-pricing,
// coupon re-validation, atomic order recording, payment initiation and
// gateway callback handling.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/MikeMC777/dryfruits-storefront/internal/coupon"
	"github.com/MikeMC777/dryfruits-storefront/internal/events"
	"github.com/MikeMC777/dryfruits-storefront/internal/metrics"
	"github.com/MikeMC777/dryfruits-storefront/internal/order"
	"github.com/MikeMC777/dryfruits-storefront/internal/payment"
	"github.com/MikeMC777/dryfruits-storefront/internal/pricing"
	"github.com/MikeMC777/dryfruits-storefront/internal/product"
)

var (
	ErrInvalidRequest      = errors.New("invalid checkout request")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductUnavailable  = errors.New("product out of stock")
	ErrMockPaymentDisabled = errors.New("mock payment is disabled")
	ErrGateway             = errors.New("could not initiate payment")

	ErrUnknownTransaction = errors.New("unknown transaction")
	ErrAmountMismatch     = errors.New("callback amount does not match order")
)

// maxQuantity bounds a single line so amount arithmetic cannot overflow.
const maxQuantity = 1000

type Gateway interface {
	Initiate(ctx context.Context, req payment.InitiateRequest) (string, error)
}

type CallbackVerifier interface {
	VerifyCallback(encoded, header string) (*payment.Callback, error)
}

type Options struct {
	PublicBaseURL string
	AllowMock     bool
}

type Service struct {
	products product.Repository
	coupons  *coupon.Validator
	orders   order.Repository
	gateway  Gateway
	verifier CallbackVerifier
	events   events.Publisher
	opts     Options
	now      func() time.Time
}

func NewService(
	products product.Repository,
	coupons *coupon.Validator,
	orders order.Repository,
	gateway Gateway,
	verifier CallbackVerifier,
	publisher events.Publisher,
	opts Options,
) *Service {
	opts.PublicBaseURL = strings.TrimRight(opts.PublicBaseURL, "/")
	return &Service{
		products: products,
		coupons:  coupons,
		orders:   orders,
		gateway:  gateway,
		verifier: verifier,
		events:   publisher,
		opts:     opts,
		now:      time.Now,
	}
}

func invalid(msg string) error { return fmt.Errorf("%w: %s", ErrInvalidRequest, msg) }

func validate(req *Request) (order.ShippingAddress, error) {
	addr := order.ShippingAddress{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
		City:    strings.TrimSpace(req.City),
		Pincode: strings.TrimSpace(req.Pincode),
	}
	if len(req.CartItems) == 0 {
		return addr, ErrEmptyCart
	}
	required := []struct{ field, value string }{
		{"name", addr.Name}, {"email", addr.Email}, {"phone", addr.Phone},
		{"address", addr.Address}, {"city", addr.City}, {"pincode", addr.Pincode},
	}
	for _, r := range required {
		if r.value == "" {
			return addr, invalid(r.field + " is required")
		}
	}
	if _, err := mail.ParseAddress(addr.Email); err != nil {
		return addr, invalid("email is invalid")
	}
	for _, it := range req.CartItems {
		if strings.TrimSpace(it.ID) == "" {
			return addr, invalid("cart item id is required")
		}
		if it.Quantity < 1 || it.Quantity > maxQuantity {
			return addr, invalid(fmt.Sprintf("quantity for %s must be between 1 and %d", it.ID, maxQuantity))
		}
	}
	return addr, nil
}

// reprice replaces client prices with catalog prices.
func (s *Service) reprice(ctx context.Context, items []CartItem) ([]pricing.Line, error) {
	ids := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ID)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	quotes, err := s.products.PricesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}

	lines := make([]pricing.Line, 0, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.ID)
		q, ok := quotes[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		if !q.InStock {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, id)
		}
		if it.Price != 0 && it.Price != q.Price {
			log.WithFields(log.Fields{
				"product_id":   id,
				"client_price": it.Price,
				"price":        q.Price,
			}).Warn("[checkout] client price differs from catalog, using catalog")
		}
		lines = append(lines, pricing.Line{ProductID: id, Quantity: it.Quantity, UnitPrice: q.Price})
	}
	return lines, nil
}

// applyCoupon re-validates code against the server-side subtotal. A rejected
// coupon is dropped, not fatal.
func (s *Service) applyCoupon(ctx context.Context, code string, subtotal int64) (*coupon.Coupon, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil
	}
	c, err := s.coupons.Validate(ctx, code, subtotal)
	var rej *coupon.RejectionError
	if errors.As(err, &rej) {
		log.WithFields(log.Fields{"coupon": coupon.Normalize(code), "reason": rej.Reason}).
			Info("[checkout] coupon rejected at checkout, charging full subtotal")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func newTransactionID() string {
	return "T" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Checkout records the order and returns where the payer goes next.
func (s *Service) Checkout(ctx context.Context, userID string, req Request) (*Result, error) {
	addr, err := validate(&req)
	if err != nil {
		return nil, err
	}
	if req.IsMockPayment && !s.opts.AllowMock {
		return nil, ErrMockPaymentDisabled
	}

	lines, err := s.reprice(ctx, req.CartItems)
	if err != nil {
		return nil, err
	}
	subtotal := pricing.Subtotal(lines)

	applied, err := s.applyCoupon(ctx, req.AppliedCouponCode, subtotal)
	if err != nil {
		return nil, err
	}
	amount := pricing.FinalAmount(subtotal, applied)

	status := order.StatusPending
	if req.IsMockPayment {
		status = order.StatusCompleted
	}
	o := &order.Order{
		ID:                    uuid.NewString(),
		UserID:                userID,
		Amount:                amount,
		Status:                status,
		ShippingAddress:       addr,
		MerchantTransactionID: newTransactionID(),
	}
	if applied != nil {
		code := applied.Code
		o.CouponCode = &code
	}
	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, order.Item{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
		})
	}
	if err := s.orders.Create(ctx, o, items); err != nil {
		return nil, fmt.Errorf("record order: %w", err)
	}
	metrics.OrdersTotal.WithLabelValues(string(status)).Inc()
	metrics.OrderAmount.Observe(float64(amount) / 100)

	logger := log.WithFields(log.Fields{
		"order_id": o.ID,
		"user_id":  userID,
		"amount":   amount,
		"subtotal": subtotal,
		"status":   status,
	})
	res := &Result{
		OrderID:     o.ID,
		RedirectURL: s.opts.PublicBaseURL + "/orders/" + o.ID,
		Amount:      amount,
		Status:      status,
		CouponCode:  o.CouponCode,
	}

	if req.IsMockPayment {
		logger.Warn("[checkout] mock payment, order completed without gateway")
		s.publish(ctx, events.OrderCompleted, o)
		return res, nil
	}

	redirect, err := s.gateway.Initiate(ctx, payment.InitiateRequest{
		OrderID:       o.ID,
		TransactionID: o.MerchantTransactionID,
		UserID:        userID,
		Amount:        amount,
		Phone:         addr.Phone,
		RedirectURL:   res.RedirectURL,
		CallbackURL:   s.opts.PublicBaseURL + "/api/payment/callback",
	})
	if err != nil {
		logger.WithError(err).Error("[checkout] payment initiation failed, order left pending")
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	logger.Info("[checkout] payment initiated")
	res.RedirectURL = redirect
	return res, nil
}

// HandleCallback authenticates a gateway notification and applies it to the
// order holding the same merchant transaction id. Each order leaves PENDING
// at most once; replays are acknowledged without effect.
func (s *Service) HandleCallback(ctx context.Context, encoded, xVerify string) error {
	cb, err := s.verifier.VerifyCallback(encoded, xVerify)
	if err != nil {
		result := "malformed"
		if errors.Is(err, payment.ErrSignatureMismatch) {
			result = "signature_mismatch"
		}
		metrics.CallbacksTotal.WithLabelValues(result).Inc()
		log.WithError(err).Warn("[checkout] callback rejected")
		return err
	}

	txnID := cb.TxnID()
	logger := log.WithFields(log.Fields{"txn_id": txnID, "code": cb.StatusCode()})

	o, err := s.orders.GetByTransaction(ctx, txnID)
	if errors.Is(err, order.ErrNotFound) {
		metrics.CallbacksTotal.WithLabelValues("unknown_transaction").Inc()
		logger.Warn("[checkout] callback for unknown transaction")
		return ErrUnknownTransaction
	}
	if err != nil {
		metrics.CallbacksTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("load order: %w", err)
	}
	logger = logger.WithField("order_id", o.ID)

	var to order.Status
	switch cb.Outcome() {
	case payment.OutcomeSuccess:
		if cb.Data.Amount != o.Amount {
			metrics.CallbacksTotal.WithLabelValues("amount_mismatch").Inc()
			logger.WithFields(log.Fields{"paid": cb.Data.Amount, "amount": o.Amount}).
				Error("[checkout] callback amount does not match order")
			return ErrAmountMismatch
		}
		to = order.StatusCompleted
	case payment.OutcomeFailed:
		to = order.StatusFailed
	default:
		metrics.CallbacksTotal.WithLabelValues("pending").Inc()
		logger.Info("[checkout] payment not final yet")
		return nil
	}

	changed, err := s.orders.Transition(ctx, txnID, order.StatusPending, to)
	if err != nil {
		metrics.CallbacksTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("transition order %s: %w", o.ID, err)
	}
	if !changed {
		metrics.CallbacksTotal.WithLabelValues("duplicate").Inc()
		logger.WithField("status", o.Status).Info("[checkout] order already settled, ignoring callback")
		return nil
	}

	metrics.CallbacksTotal.WithLabelValues(strings.ToLower(string(to))).Inc()
	logger.WithField("status", to).Info("[checkout] order settled")
	o.Status = to
	if to == order.StatusCompleted {
		s.publish(ctx, events.OrderCompleted, o)
	} else {
		s.publish(ctx, events.OrderFailed, o)
	}
	return nil
}

// publish is best effort: the order row is the source of truth.
func (s *Service) publish(ctx context.Context, typ string, o *order.Order) {
	err := s.events.PublishOrder(ctx, events.OrderEvent{
		Type:          typ,
		OrderID:       o.ID,
		UserID:        o.UserID,
		Amount:        o.Amount,
		CouponCode:    o.CouponCode,
		TransactionID: o.MerchantTransactionID,
		OccurredAt:    s.now().UTC(),
	})
	if err != nil {
		log.WithError(err).WithField("order_id", o.ID).Error("[checkout] publish order event")
	}
}
