package checkout_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-jewel-storefront/internal/cart"
	"go-jewel-storefront/internal/checkout"
	cartmock "go-jewel-storefront/internal/mock/cart"
	ordermock "go-jewel-storefront/internal/mock/order"
	paymentmock "go-jewel-storefront/internal/mock/payment"
	"go-jewel-storefront/internal/order"
	"go-jewel-storefront/internal/payment"
	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recorded struct {
	aggregateID string
	eventType   string
	payload     any
}

type fakeRecorder struct {
	events []recorded
	err    error
}

func (f *fakeRecorder) Record(_ context.Context, aggregateID, eventType string, payload any) error {
	f.events = append(f.events, recorded{aggregateID, eventType, payload})
	return f.err
}

type fakeFeed struct {
	sent []string
}

func (f *fakeFeed) Broadcast(eventType string, _ any) {
	f.sent = append(f.sent, eventType)
}

type fixture struct {
	svc      checkout.Service
	cartRepo *cartmock.MockRepository
	orders   *ordermock.MockRepository
	gateway  *paymentmock.MockGateway
	events   *fakeRecorder
	feed     *fakeFeed
	local    *session.Local
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		cartRepo: cartmock.NewMockRepository(ctrl),
		orders:   ordermock.NewMockRepository(ctrl),
		gateway:  paymentmock.NewMockGateway(ctrl),
		events:   &fakeRecorder{},
		feed:     &fakeFeed{},
	}
	f.gateway.EXPECT().Name().Return("mock").AnyTimes()

	f.svc = checkout.NewService(checkout.Deps{
		Cart:    cart.NewService(cart.Deps{Repo: f.cartRepo}),
		Orders:  order.NewService(f.orders, nil),
		Gateway: f.gateway,
		Events:  f.events,
		Feed:    f.feed,
		Now:     func() time.Time { return time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC) },
		NewID:   func() string { return "0f8c2b1e-aaaa-bbbb-cccc-000000000001" },
	})

	ctx := context.Background()
	f.local = session.NewLocal(session.NewMemoryStore(), "b1")
	require.NoError(t, f.local.SaveSession(ctx, "tok", session.User{
		CustID: "C1", Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Role: "customer",
	}))
	require.NoError(t, session.Save(ctx, f.local, session.CartKey[[]cart.Item]("C1"), []cart.Item{
		{CartID: "11", ItemNo: "R1", Description: "Gold Ring", Quantity: 2,
			DisplayPrice: decimal.NewFromInt(1000), EffectivePrice: decimal.NewFromInt(1000)},
	}))
	return f
}

func validDelivery() checkout.Delivery {
	return checkout.Delivery{
		Name:    "Asha",
		Address: " 12 MG Road ",
		City:    "Pune",
		State:   "MH",
		PinCode: "411001",
		Phone:   "9876543210",
	}
}

func cartCached(t *testing.T, local *session.Local) bool {
	t.Helper()
	_, ok, err := session.Load(context.Background(), local, session.CartKey[[]cart.Item]("C1"))
	require.NoError(t, err)
	return ok
}

func TestCheckout_Start(t *testing.T) {
	t.Run("computes_totals_from_cart", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.Start(context.Background(), f.local)
		require.NoError(t, err)
		assert.Equal(t, checkout.StateFormEntry, res.Session.State)
		assert.Equal(t, "2000", res.Session.Totals.Subtotal.String())
		assert.Equal(t, "30", res.Session.Totals.CGST.String())
		assert.Equal(t, "2060", res.Session.Totals.Total.String())
	})

	t.Run("empty_cart", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		require.NoError(t, session.Remove(ctx, f.local, session.CartKey[[]cart.Item]("C1")))
		f.cartRepo.EXPECT().List(ctx, "C1").Return([]cart.Item{}, true, nil)

		_, err := f.svc.Start(ctx, f.local)
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	})

	t.Run("requires_session", func(t *testing.T) {
		f := newFixture(t)
		guest := session.NewLocal(session.NewMemoryStore(), "guest")

		_, err := f.svc.Start(context.Background(), guest)
		assert.ErrorIs(t, err, apperror.ErrSessionRequired)
	})
}

func TestCheckout_Submit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *checkout.Delivery)
		message string
	}{
		{"blank_address", func(d *checkout.Delivery) { d.Address = "   " }, "Please enter your address"},
		{"blank_city", func(d *checkout.Delivery) { d.City = "" }, "Please enter your city"},
		{"blank_state", func(d *checkout.Delivery) { d.State = "" }, "Please enter your state"},
		{"short_pin", func(d *checkout.Delivery) { d.PinCode = "41100" }, "PIN code must be exactly 6 digits"},
		{"letters_in_pin", func(d *checkout.Delivery) { d.PinCode = "41100A" }, "PIN code must be exactly 6 digits"},
		{"long_phone", func(d *checkout.Delivery) { d.Phone = "98765432100" }, "Phone number must be exactly 10 digits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			started, err := f.svc.Start(ctx, f.local)
			require.NoError(t, err)

			d := validDelivery()
			tt.mutate(&d)

			// no gateway or order expectations: nothing may hit the network
			res, err := f.svc.Submit(ctx, f.local, started.Session.ID, checkout.SubmitRequest{Method: checkout.MethodCOD, Delivery: d})
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
			assert.Equal(t, checkout.StateFormEntry, res.Session.State)
			require.Len(t, res.Notices, 1)
			assert.Equal(t, notify.CategoryValidation, res.Notices[0].Category)
			assert.Equal(t, tt.message, res.Notices[0].Message)
		})
	}
}

func TestCheckout_OnlinePaymentDismissed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	started, err := f.svc.Start(ctx, f.local)
	require.NoError(t, err)
	id := started.Session.ID

	f.gateway.EXPECT().
		CreateOrder(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req payment.CreateOrderRequest) (payment.Order, error) {
			assert.Equal(t, "2060", req.Amount.String())
			assert.Equal(t, payment.CurrencyINR, req.Currency)
			assert.Equal(t, "rcpt_0f8c2b1e", req.Receipt)
			assert.Equal(t, "asha@example.com", req.Customer.Email)
			return payment.Order{Gateway: "mock", ID: "order_1", Amount: 206000, Currency: "INR", Key: "rzp_test"}, nil
		})

	res, err := f.svc.Submit(ctx, f.local, id, checkout.SubmitRequest{Method: checkout.MethodOnline, Delivery: validDelivery()})
	require.NoError(t, err)
	assert.Equal(t, checkout.StateSubmitting, res.Session.State)
	require.NotNil(t, res.Widget)
	assert.Equal(t, "order_1", res.Widget.ID)
	assert.Equal(t, "9876543210", res.Widget.Prefill.Phone)
	assert.Equal(t, "12 MG Road", res.Session.Delivery.Address)

	res, err = f.svc.Outcome(ctx, f.local, id, checkout.OutcomeRequest{Status: checkout.OutcomeDismissed})
	require.NoError(t, err)
	assert.Equal(t, checkout.StateFormEntry, res.Session.State)
	assert.Empty(t, res.Session.OrderNo)
	require.Len(t, res.Notices, 1)
	assert.Equal(t, notify.SeverityInfo, res.Notices[0].Severity)
	assert.Equal(t, notify.CategoryCancelled, res.Notices[0].Category)
	assert.Equal(t, "Payment cancelled", res.Notices[0].Message)

	assert.True(t, cartCached(t, f.local))
	assert.Empty(t, f.events.events)
}

func TestCheckout_OnlinePaymentFailedThenSucceeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	started, err := f.svc.Start(ctx, f.local)
	require.NoError(t, err)
	id := started.Session.ID
	submit := checkout.SubmitRequest{Method: checkout.MethodOnline, Delivery: validDelivery()}

	f.gateway.EXPECT().CreateOrder(ctx, gomock.Any()).Return(payment.Order{ID: "order_1"}, nil).Times(2)

	_, err = f.svc.Submit(ctx, f.local, id, submit)
	require.NoError(t, err)

	res, err := f.svc.Outcome(ctx, f.local, id, checkout.OutcomeRequest{Status: checkout.OutcomeFailed, Description: "Card declined by bank"})
	require.Error(t, err)
	assert.Equal(t, checkout.StateFormEntry, res.Session.State)
	assert.Equal(t, "Card declined by bank", res.Notices[0].Message)

	_, err = f.svc.Submit(ctx, f.local, id, submit)
	require.NoError(t, err)

	f.gateway.EXPECT().
		Verify(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req payment.VerifyRequest) (string, error) {
			assert.Equal(t, "order_1", req.Callback.GatewayOrderID)
			assert.Equal(t, "pay_9", req.Callback.PaymentID)
			assert.Equal(t, "C1", req.CustID)
			assert.Len(t, req.Lines, 1)
			return "ORD555", nil
		})

	res, err = f.svc.Outcome(ctx, f.local, id, checkout.OutcomeRequest{
		Status:   checkout.OutcomeSuccess,
		Callback: payment.Callback{PaymentID: "pay_9", Signature: "sig"},
	})
	require.NoError(t, err)
	assert.Equal(t, checkout.StateOrderPlaced, res.Session.State)
	assert.Equal(t, "ORD555", res.Session.OrderNo)
	assert.False(t, cartCached(t, f.local))
	assert.Equal(t, []string{checkout.EventOrderPlaced}, f.feed.sent)
}

func TestCheckout_VerifyFailureReturnsToForm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	started, err := f.svc.Start(ctx, f.local)
	require.NoError(t, err)
	id := started.Session.ID

	f.gateway.EXPECT().CreateOrder(ctx, gomock.Any()).Return(payment.Order{ID: "order_1"}, nil)
	f.gateway.EXPECT().Verify(ctx, gomock.Any()).Return("", payment.ErrVerificationFailed)

	_, err = f.svc.Submit(ctx, f.local, id, checkout.SubmitRequest{Method: checkout.MethodOnline, Delivery: validDelivery()})
	require.NoError(t, err)

	res, err := f.svc.Outcome(ctx, f.local, id, checkout.OutcomeRequest{Status: checkout.OutcomeSuccess})
	assert.ErrorIs(t, err, payment.ErrVerificationFailed)
	assert.Equal(t, checkout.StateFormEntry, res.Session.State)
	assert.True(t, res.Notices.HasFailure())
	assert.True(t, cartCached(t, f.local))
}

func TestCheckout_CashOnDelivery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	started, err := f.svc.Start(ctx, f.local)
	require.NoError(t, err)
	id := started.Session.ID

	f.orders.EXPECT().
		Place(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req order.PlaceRequest) (string, error) {
			assert.Equal(t, "C1", req.CustID)
			assert.Equal(t, "cod", req.PaymentMethod)
			require.Len(t, req.CartItems, 1)
			assert.Equal(t, "R1", req.CartItems[0].ItemNo)
			return "ORD123", nil
		})

	res, err := f.svc.Submit(ctx, f.local, id, checkout.SubmitRequest{Method: checkout.MethodCOD, Delivery: validDelivery()})
	require.NoError(t, err)
	assert.Equal(t, checkout.StateOrderPlaced, res.Session.State)
	assert.Equal(t, "ORD123", res.Session.OrderNo)
	assert.False(t, cartCached(t, f.local))
	assert.Len(t, res.Notices.Of(notify.CategoryOrder), 1)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, "ORD123", f.events.events[0].aggregateID)
	assert.Equal(t, checkout.EventOrderPlaced, f.events.events[0].eventType)
	evt := f.events.events[0].payload.(checkout.OrderPlaced)
	assert.Equal(t, 2, evt.Pieces)
	assert.Equal(t, "b1", evt.BrowserID)

	t.Run("resubmit_is_noop", func(t *testing.T) {
		again, err := f.svc.Submit(ctx, f.local, id, checkout.SubmitRequest{Method: checkout.MethodCOD, Delivery: validDelivery()})
		require.NoError(t, err)
		assert.Equal(t, "ORD123", again.Session.OrderNo)
	})
}

func TestCheckout_CashOnDeliveryFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.events.err = errors.New("unused")

	started, err := f.svc.Start(ctx, f.local)
	require.NoError(t, err)

	f.orders.EXPECT().Place(ctx, gomock.Any()).Return("", apperror.ErrUpstream.WithMessage("Item no longer available"))

	res, err := f.svc.Submit(ctx, f.local, started.Session.ID, checkout.SubmitRequest{Method: checkout.MethodCOD, Delivery: validDelivery()})
	require.Error(t, err)
	assert.Equal(t, checkout.StateFormEntry, res.Session.State)
	assert.Equal(t, "Item no longer available", res.Notices[0].Message)
	assert.True(t, cartCached(t, f.local))
	assert.Empty(t, f.events.events)
}

func TestCheckout_UnknownSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Get(context.Background(), f.local, "nope")
	assert.ErrorIs(t, err, checkout.ErrCheckoutNotFound)
}

func TestCheckout_SubmitChargesCurrentCart(t *testing.T) {
	t.Run("item_added_after_start_is_ordered", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		started, err := f.svc.Start(ctx, f.local)
		require.NoError(t, err)
		assert.Equal(t, "2060", started.Session.Totals.Total.String())

		require.NoError(t, session.Save(ctx, f.local, session.CartKey[[]cart.Item]("C1"), []cart.Item{
			{CartID: "11", ItemNo: "R1", Description: "Gold Ring", Quantity: 2,
				DisplayPrice: decimal.NewFromInt(1000), EffectivePrice: decimal.NewFromInt(1000)},
			{CartID: "12", ItemNo: "N1", Description: "Silver Chain", Quantity: 1,
				DisplayPrice: decimal.NewFromInt(500), EffectivePrice: decimal.NewFromInt(500)},
		}))

		f.orders.EXPECT().
			Place(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req order.PlaceRequest) (string, error) {
				require.Len(t, req.CartItems, 2)
				assert.Equal(t, "N1", req.CartItems[1].ItemNo)
				assert.Equal(t, "2575", req.TotalAmount)
				return "ORD124", nil
			})

		res, err := f.svc.Submit(ctx, f.local, started.Session.ID, checkout.SubmitRequest{Method: checkout.MethodCOD, Delivery: validDelivery()})
		require.NoError(t, err)
		assert.Equal(t, "2575", res.Session.Totals.Total.String())
		assert.Len(t, res.Session.Items, 2)
	})

	t.Run("cart_emptied_after_start", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()

		started, err := f.svc.Start(ctx, f.local)
		require.NoError(t, err)
		require.NoError(t, session.Save(ctx, f.local, session.CartKey[[]cart.Item]("C1"), []cart.Item{}))

		res, err := f.svc.Submit(ctx, f.local, started.Session.ID, checkout.SubmitRequest{Method: checkout.MethodCOD, Delivery: validDelivery()})
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
		assert.Equal(t, checkout.StateFormEntry, res.Session.State)
	})
}

func TestCheckout_OutcomeRejectsForeignGatewayOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	started, err := f.svc.Start(ctx, f.local)
	require.NoError(t, err)
	id := started.Session.ID

	f.gateway.EXPECT().CreateOrder(ctx, gomock.Any()).Return(payment.Order{ID: "order_1"}, nil)
	f.gateway.EXPECT().Verify(gomock.Any(), gomock.Any()).Times(0)

	_, err = f.svc.Submit(ctx, f.local, id, checkout.SubmitRequest{Method: checkout.MethodOnline, Delivery: validDelivery()})
	require.NoError(t, err)

	res, err := f.svc.Outcome(ctx, f.local, id, checkout.OutcomeRequest{
		Status:   checkout.OutcomeSuccess,
		Callback: payment.Callback{GatewayOrderID: "some-other-paid-order"},
	})
	assert.ErrorIs(t, err, checkout.ErrGatewayOrderMismatch)
	assert.Equal(t, checkout.StateFormEntry, res.Session.State)
	assert.Empty(t, res.Session.OrderNo)
	assert.True(t, cartCached(t, f.local))
	assert.Empty(t, f.events.events)
}
