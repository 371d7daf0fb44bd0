package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"go-jewel-storefront/internal/session"
)

type orderPlacedPayload struct {
	OrderNo string `json:"orderNo"`
	CustID  string `json:"custId"`
}

// handleOrderPlaced drops the customer's cart cache on every browser, not
// just the one that checked out.
func handleOrderPlaced(ctx context.Context, payload []byte, store session.Store) error {
	var data orderPlacedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}
	if data.CustID == "" {
		return errors.New("order placed event without custId")
	}

	log.Printf("[CONSUMER] Purging cart caches for customer %s (order %s)", data.CustID, data.OrderNo)

	n, err := session.PurgeCart(ctx, store, data.CustID)
	if err != nil {
		return err
	}

	log.Printf("[CONSUMER] Purged cart on %d browsers for customer %s", n, data.CustID)
	return nil
}
