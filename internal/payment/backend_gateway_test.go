package payment_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-jewel-storefront/internal/apiclient"
	"go-jewel-storefront/internal/payment"
	"go-jewel-storefront/internal/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(206000), payment.MinorUnits(decimal.RequireFromString("2060")))
	assert.Equal(t, int64(103), payment.MinorUnits(decimal.RequireFromString("1.025")))
	assert.Equal(t, int64(0), payment.MinorUnits(decimal.Zero))
}

func TestBackendGateway_CreateOrder(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"order_in_data", `{"success":true,"data":{"id":"order_1","amount":206000,"currency":"INR"}}`},
		{"order_at_top", `{"success":true,"order":{"orderId":"order_1"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/payment/create-order", r.URL.Path)
				var body map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, float64(206000), body["amount"])
				assert.Equal(t, "INR", body["currency"])
				assert.Equal(t, "rcpt_1", body["receipt"])
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			gw := payment.NewBackendGateway(apiclient.New(apiclient.Options{BaseURL: srv.URL}), "rzp_test")
			o, err := gw.CreateOrder(context.Background(), payment.CreateOrderRequest{
				Amount:   decimal.NewFromInt(2060),
				Currency: payment.CurrencyINR,
				Receipt:  "rcpt_1",
			})
			require.NoError(t, err)
			assert.Equal(t, "order_1", o.ID)
			assert.Equal(t, int64(206000), o.Amount)
			assert.Equal(t, "INR", o.Currency)
			assert.Equal(t, "rzp_test", o.Key)
		})
	}

	t.Run("no_order_id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"success":true,"data":{}}`)
		}))
		defer srv.Close()

		gw := payment.NewBackendGateway(apiclient.New(apiclient.Options{BaseURL: srv.URL}), "k")
		_, err := gw.CreateOrder(context.Background(), payment.CreateOrderRequest{Amount: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, payment.ErrCreateOrderFailed)
	})
}

func TestBackendGateway_Verify(t *testing.T) {
	t.Run("returns_order_number", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/payment/verify", r.URL.Path)
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "order_1", body["razorpay_order_id"])
			assert.Equal(t, "pay_1", body["razorpay_payment_id"])
			assert.Equal(t, "sig", body["razorpay_signature"])
			assert.Equal(t, "C1", body["custId"])
			assert.Equal(t, "2060", body["totalAmount"])
			_, _ = io.WriteString(w, `{"success":true,"data":{"CustInNo":"ORD42"}}`)
		}))
		defer srv.Close()

		gw := payment.NewBackendGateway(apiclient.New(apiclient.Options{BaseURL: srv.URL}), "k")
		orderNo, err := gw.Verify(context.Background(), payment.VerifyRequest{
			Callback: payment.Callback{GatewayOrderID: "order_1", PaymentID: "pay_1", Signature: "sig"},
			CustID:   "C1",
			Total:    decimal.NewFromInt(2060),
		})
		require.NoError(t, err)
		assert.Equal(t, "ORD42", orderNo)
	})

	t.Run("rejected_signature", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"success":false,"message":"Invalid signature"}`)
		}))
		defer srv.Close()

		gw := payment.NewBackendGateway(apiclient.New(apiclient.Options{BaseURL: srv.URL}), "k")
		_, err := gw.Verify(context.Background(), payment.VerifyRequest{})
		require.Error(t, err)
		assert.Equal(t, "Invalid signature", apperror.ToHTTP(err).Message)
	})
}
