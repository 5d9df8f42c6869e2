// Package payment talks to the hosted payment gateway: it signs and submits
// pay requests and authenticates the gateway's server-to-server callbacks.
package payment

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/MikeMC777/dryfruits-storefront/internal/config"
	"github.com/MikeMC777/dryfruits-storefront/internal/metrics"
)

// ErrGateway covers every way an initiation can fail. Callers show a generic
// message; the cause is only logged.
var ErrGateway = errors.New("payment gateway error")

// InitiateRequest is what the storefront knows about a payment attempt.
type InitiateRequest struct {
	OrderID       string
	TransactionID string
	UserID        string
	Amount        int64
	Phone         string
	RedirectURL   string
	CallbackURL   string
}

type payPayload struct {
	MerchantID            string     `json:"merchantId"`
	MerchantTransactionID string     `json:"merchantTransactionId"`
	MerchantUserID        string     `json:"merchantUserId"`
	Amount                int64      `json:"amount"`
	RedirectURL           string     `json:"redirectUrl"`
	RedirectMode          string     `json:"redirectMode"`
	CallbackURL           string     `json:"callbackUrl"`
	MobileNumber          string     `json:"mobileNumber,omitempty"`
	PaymentInstrument     instrument `json:"paymentInstrument"`
}

type instrument struct {
	Type string `json:"type"`
}

type payResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		InstrumentResponse struct {
			RedirectInfo struct {
				URL string `json:"url"`
			} `json:"redirectInfo"`
		} `json:"instrumentResponse"`
	} `json:"data"`
}

type Client struct {
	http       *resty.Client
	breaker    *gobreaker.CircuitBreaker
	signer     Signer
	merchantID string
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.HostURL).
			SetTimeout(cfg.Timeout).
			SetRetryCount(0).
			SetTransport(otelhttp.NewTransport(http.DefaultTransport)),
		breaker:    newBreaker("phonepe"),
		signer:     NewSigner(cfg.SaltKey, cfg.SaltIndex),
		merchantID: cfg.MerchantID,
	}
}

// EncodePayload is base64(JSON(v)), the form both directions of the gateway
// protocol sign over.
func EncodePayload(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Initiate submits a signed pay request and returns the payer redirect URL.
func (c *Client) Initiate(ctx context.Context, req InitiateRequest) (string, error) {
	encoded, err := EncodePayload(payPayload{
		MerchantID:            c.merchantID,
		MerchantTransactionID: req.TransactionID,
		MerchantUserID:        "U" + strings.ReplaceAll(req.UserID, "-", ""),
		Amount:                req.Amount,
		RedirectURL:           req.RedirectURL,
		RedirectMode:          "POST",
		CallbackURL:           req.CallbackURL,
		MobileNumber:          req.Phone,
		PaymentInstrument:     instrument{Type: "PAY_PAGE"},
	})
	if err != nil {
		return "", fmt.Errorf("%w: encode payload: %v", ErrGateway, err)
	}

	logger := log.WithFields(log.Fields{"order_id": req.OrderID, "txn_id": req.TransactionID})

	res, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeader("X-VERIFY", c.signer.Sign(encoded, PayPath)).
			SetBody(map[string]string{"request": encoded}).
			Post(PayPath)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return nil, fmt.Errorf("gateway returned %d", resp.StatusCode())
		}
		return resp, nil
	})
	if err != nil {
		result := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = "circuit_open"
		}
		metrics.GatewayRequests.WithLabelValues(result).Inc()
		logger.WithError(err).Error("[payment] pay request failed")
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	resp := res.(*resty.Response)
	var body payResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		metrics.GatewayRequests.WithLabelValues("malformed").Inc()
		logger.WithField("status", resp.StatusCode()).WithError(err).Error("[payment] malformed gateway response")
		return "", fmt.Errorf("%w: decode response: %v", ErrGateway, err)
	}
	redirect := body.Data.InstrumentResponse.RedirectInfo.URL
	if !body.Success || redirect == "" {
		metrics.GatewayRequests.WithLabelValues("rejected").Inc()
		logger.WithFields(log.Fields{
			"status": resp.StatusCode(),
			"code":   body.Code,
			"msg":    body.Message,
		}).Warn("[payment] gateway rejected pay request")
		return "", fmt.Errorf("%w: rejected with code %q", ErrGateway, body.Code)
	}
	metrics.GatewayRequests.WithLabelValues("ok").Inc()
	return redirect, nil
}
