package gateway

import (
	"bytes"
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"ticketing-service/config"
	"ticketing-service/internal/module/payment/models/request"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/log"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

// Notification is the strict normalized shape handed to the
// reconciliation engine. Raw gateway payloads never cross this
// boundary unverified.
type Notification struct {
	OrderID              string
	GatewayTransactionID string
	TransactionStatus    string
	FraudStatus          string
	Channel              string
	StatusCode           string
	GrossAmount          string
}

// ChargeAction describes what the participant must do to pay: scan the
// QR before it expires.
type ChargeAction struct {
	GatewayTransactionID string
	QRString             string
	QRCodeURL            string
	ExpiresAt            time.Time
}

type Gateway interface {
	CreateCharge(ctx context.Context, orderID string, grossAmount int64, name, email, phone string) (ChargeAction, error)
	VerifyNotification(raw []byte) (Notification, error)
}

type midtrans struct {
	cfg        *config.GatewayConfig
	log        log.Logger
	httpClient *circuit.HTTPClient
}

func New(cfg *config.GatewayConfig, log log.Logger, httpClient *circuit.HTTPClient) Gateway {
	return &midtrans{
		cfg:        cfg,
		log:        log,
		httpClient: httpClient,
	}
}

type chargeRequest struct {
	PaymentType        string             `json:"payment_type"`
	TransactionDetails transactionDetails `json:"transaction_details"`
	CustomerDetails    customerDetails    `json:"customer_details"`
	CustomExpiry       customExpiry       `json:"custom_expiry"`
}

type transactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type customerDetails struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type customExpiry struct {
	ExpiryDuration int    `json:"expiry_duration"`
	Unit           string `json:"unit"`
}

type chargeResponse struct {
	StatusCode        string `json:"status_code"`
	StatusMessage     string `json:"status_message"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	QRString          string `json:"qr_string"`
	ExpiryTime        string `json:"expiry_time"`
	Actions           []struct {
		Name   string `json:"name"`
		Method string `json:"method"`
		URL    string `json:"url"`
	} `json:"actions"`
}

// CreateCharge implements Gateway. Gross amount is whole minor units;
// the gateway rejects fractional amounts upstream.
func (m *midtrans) CreateCharge(ctx context.Context, orderID string, grossAmount int64, name, email, phone string) (ChargeAction, error) {
	payload := chargeRequest{
		PaymentType: m.cfg.Channel,
		TransactionDetails: transactionDetails{
			OrderID:     orderID,
			GrossAmount: grossAmount,
		},
		CustomerDetails: customerDetails{
			FirstName: name,
			Email:     email,
			Phone:     phone,
		},
		CustomExpiry: customExpiry{
			ExpiryDuration: m.cfg.ChargeExpiry,
			Unit:           "minute",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return ChargeAction{}, errors.InternalServerError("error marshal charge request")
	}

	url := fmt.Sprintf("%s/v2/charge", m.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ChargeAction{}, errors.InternalServerError("error build charge request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", m.basicAuth())

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return ChargeAction{}, errors.BadGateway("payment gateway unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		m.log.Error(ctx, "gateway charge returned server error", resp.StatusCode)
		return ChargeAction{}, errors.BadGateway("payment gateway unavailable")
	}

	var chargeResp chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&chargeResp); err != nil {
		return ChargeAction{}, errors.BadGateway("error decode charge response")
	}

	if chargeResp.StatusCode != "201" {
		m.log.Error(ctx, "gateway rejected charge", chargeResp.StatusCode, chargeResp.StatusMessage)
		return ChargeAction{}, errors.BadRequest(fmt.Sprintf("charge rejected by gateway: %s", chargeResp.StatusMessage))
	}

	action := ChargeAction{
		GatewayTransactionID: chargeResp.TransactionID,
		QRString:             chargeResp.QRString,
		ExpiresAt:            m.parseExpiry(chargeResp.ExpiryTime),
	}
	for _, a := range chargeResp.Actions {
		if a.Name == "generate-qr-code" {
			action.QRCodeURL = a.URL
		}
	}

	return action, nil
}

// VerifyNotification implements Gateway. The signature is
// sha512(order_id + status_code + gross_amount + server_key); anything
// that fails to parse or sign is rejected before it can reach the
// state machine.
func (m *midtrans) VerifyNotification(raw []byte) (Notification, error) {
	var notif request.GatewayNotification
	if err := json.Unmarshal(raw, &notif); err != nil {
		return Notification{}, errors.UnauthorizedError("malformed gateway notification")
	}

	if notif.OrderID == "" || notif.StatusCode == "" || notif.SignatureKey == "" {
		return Notification{}, errors.UnauthorizedError("incomplete gateway notification")
	}

	expected := m.sign(notif.OrderID, notif.StatusCode, notif.GrossAmount)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(notif.SignatureKey)) != 1 {
		return Notification{}, errors.UnauthorizedError("invalid notification signature")
	}

	return Notification{
		OrderID:              notif.OrderID,
		GatewayTransactionID: notif.TransactionID,
		TransactionStatus:    notif.TransactionStatus,
		FraudStatus:          notif.FraudStatus,
		Channel:              notif.PaymentType,
		StatusCode:           notif.StatusCode,
		GrossAmount:          notif.GrossAmount,
	}, nil
}

func (m *midtrans) sign(orderID, statusCode, grossAmount string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + m.cfg.ServerKey))
	return hex.EncodeToString(sum[:])
}

func (m *midtrans) basicAuth() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(m.cfg.ServerKey+":"))
}

// Midtrans timestamps carry no zone designator and are always GMT+7.
var midtransLocation = time.FixedZone("WIB", 7*60*60)

func (m *midtrans) parseExpiry(expiry string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", expiry, midtransLocation)
	if err != nil {
		return time.Now().Add(time.Duration(m.cfg.ChargeExpiry) * time.Minute)
	}
	return t
}
