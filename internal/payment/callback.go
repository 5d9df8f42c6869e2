package payment

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrSignatureMismatch = errors.New("callback signature mismatch")
	ErrMalformedCallback = errors.New("malformed callback")
)

// Outcome is what a callback means for the order it refers to.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSuccess
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

const CodePaymentSuccess = "PAYMENT_SUCCESS"

// declineCodes end a payment attempt for good.
var declineCodes = map[string]bool{
	"PAYMENT_ERROR":        true,
	"PAYMENT_DECLINED":     true,
	"AUTHORIZATION_FAILED": true,
	"TIMED_OUT":            true,
}

type CallbackData struct {
	MerchantID            string `json:"merchantId"`
	MerchantTransactionID string `json:"merchantTransactionId"`
	TransactionID         string `json:"transactionId"`
	Amount                int64  `json:"amount"`
	State                 string `json:"state"`
	ResponseCode          string `json:"responseCode"`
	Code                  string `json:"code"`
}

// Callback is the decoded `response` field of a gateway notification.
type Callback struct {
	Success bool         `json:"success"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Data    CallbackData `json:"data"`
}

// StatusCode prefers the top-level code; some gateway versions only set it
// inside data.
func (c *Callback) StatusCode() string {
	if c.Code != "" {
		return c.Code
	}
	return c.Data.Code
}

// TxnID is the merchant transaction id we generated at checkout.
func (c *Callback) TxnID() string {
	if c.Data.MerchantTransactionID != "" {
		return c.Data.MerchantTransactionID
	}
	return c.Data.TransactionID
}

func (c *Callback) Outcome() Outcome {
	code := c.StatusCode()
	switch {
	case code == CodePaymentSuccess:
		return OutcomeSuccess
	case declineCodes[code]:
		return OutcomeFailed
	default:
		return OutcomePending
	}
}

// VerifyCallback authenticates the raw base64 response against its X-VERIFY
// header and only then decodes it.
func (s Signer) VerifyCallback(encoded, header string) (*Callback, error) {
	if encoded == "" || header == "" {
		return nil, fmt.Errorf("%w: missing response or X-VERIFY", ErrMalformedCallback)
	}
	if !s.Verify(encoded, CallbackPath, header) {
		return nil, ErrSignatureMismatch
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCallback, err)
	}
	var cb Callback
	if err := json.Unmarshal(raw, &cb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCallback, err)
	}
	if cb.TxnID() == "" {
		return nil, fmt.Errorf("%w: no transaction id", ErrMalformedCallback)
	}
	return &cb, nil
}
