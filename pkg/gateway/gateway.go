package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// PaymentGateway charges an order through the external payment provider.
// A false result with nil error means the provider declined the charge.
type PaymentGateway interface {
	Charge(ctx context.Context, orderRef string, amount float64, method string) (bool, error)
}

type restGateway struct {
	client *resty.Client
}

func NewREST(baseURL, apiKey string) PaymentGateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetTimeout(15 * time.Second)
	return &restGateway{client: client}
}

type chargeRequest struct {
	OrderRef string  `json:"orderRef"`
	Amount   float64 `json:"amount"`
	Method   string  `json:"method"`
}

type chargeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (g *restGateway) Charge(ctx context.Context, orderRef string, amount float64, method string) (bool, error) {
	var out chargeResponse
	res, err := g.client.R().
		SetContext(ctx).
		SetBody(chargeRequest{OrderRef: orderRef, Amount: amount, Method: method}).
		SetResult(&out).
		Post("/charges")
	if err != nil {
		return false, fmt.Errorf("payment gateway: %w", err)
	}
	if res.IsError() {
		return false, nil
	}
	return out.Success, nil
}
