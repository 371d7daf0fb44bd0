package checkout

import (
	"context"
	"time"

	"go-jewel-storefront/internal/cart"
	"go-jewel-storefront/internal/order"
	"go-jewel-storefront/internal/payment"
	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/pkg/validation"
	"go-jewel-storefront/internal/pricing"
	"go-jewel-storefront/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionTTL = time.Hour

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Start(ctx context.Context, local *session.Local) (Result, error)
	Get(ctx context.Context, local *session.Local, id string) (Result, error)
	Submit(ctx context.Context, local *session.Local, id string, req SubmitRequest) (Result, error)
	// Outcome applies what the payment widget reported.
	Outcome(ctx context.Context, local *session.Local, id string, req OutcomeRequest) (Result, error)
}

// EventRecorder persists domain events for later publishing.
type EventRecorder interface {
	Record(ctx context.Context, aggregateID, eventType string, payload any) error
}

// Broadcaster pushes an event to connected admin screens.
type Broadcaster interface {
	Broadcast(eventType string, payload any)
}

type Deps struct {
	Cart    cart.Service
	Orders  order.Service
	Gateway payment.Gateway
	Events  EventRecorder
	Feed    Broadcaster
	Logger  *zap.Logger
	Now     func() time.Time
	NewID   func() string
}

type service struct {
	cart     cart.Service
	orders   order.Service
	gateway  payment.Gateway
	events   EventRecorder
	feed     Broadcaster
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

func NewService(deps Deps) Service {
	if deps.Cart == nil || deps.Orders == nil {
		panic("checkout needs cart and order services")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.NewID == nil {
		deps.NewID = func() string { return uuid.NewString() }
	}
	return &service{
		cart:     deps.Cart,
		orders:   deps.Orders,
		gateway:  deps.Gateway,
		events:   deps.Events,
		feed:     deps.Feed,
		validate: validation.New(),
		logger:   deps.Logger,
		now:      deps.Now,
		newID:    deps.NewID,
	}
}

// ========================
// helpers
// ========================

func sessionKey(id string) session.Key[Session] {
	return session.NewKey[Session]("checkout_"+id, sessionTTL)
}

func requireSession(ctx context.Context, local *session.Local) (session.Credentials, error) {
	if local == nil {
		return session.Credentials{}, apperror.ErrSessionRequired
	}
	creds, ok := local.Credentials(ctx)
	if !ok {
		return session.Credentials{}, apperror.ErrSessionRequired
	}
	return creds, nil
}

func (s *service) load(ctx context.Context, local *session.Local, id string) (Session, session.Credentials, error) {
	creds, err := requireSession(ctx, local)
	if err != nil {
		return Session{}, creds, err
	}
	sess, ok, err := session.Load(ctx, local, sessionKey(id))
	if err != nil {
		return Session{}, creds, err
	}
	if !ok || sess.CustID != creds.CustID {
		return Session{}, creds, ErrCheckoutNotFound
	}
	return sess, creds, nil
}

func (s *service) save(ctx context.Context, local *session.Local, sess *Session) {
	sess.UpdatedAt = s.now()
	if err := session.Save(ctx, local, sessionKey(sess.ID), *sess); err != nil {
		s.logger.Warn("write checkout session", zap.String("checkout_id", sess.ID), zap.Error(err))
	}
}

func failWith(res Result, err error) (Result, error) {
	res.Notices.Error(notify.CategoryFailure, apperror.ToHTTP(err).Message)
	return res, err
}

// back returns the session to form entry after a failed attempt.
func (s *service) back(ctx context.Context, local *session.Local, sess *Session) {
	sess.State = StateFormEntry
	sess.Gateway = nil
	s.save(ctx, local, sess)
}

func paymentLines(items []cart.Item) []payment.Line {
	out := make([]payment.Line, 0, len(items))
	for _, it := range items {
		out = append(out, payment.Line{
			ItemNo:      it.ItemNo,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.EffectivePrice,
		})
	}
	return out
}

func placeLines(items []cart.Item) []order.PlaceLine {
	out := make([]order.PlaceLine, 0, len(items))
	for _, it := range items {
		out = append(out, order.PlaceLine{
			CartID:      it.CartID,
			ItemNo:      it.ItemNo,
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.EffectivePrice,
		})
	}
	return out
}

// ========================
// operations
// ========================

func (s *service) Start(ctx context.Context, local *session.Local) (Result, error) {
	creds, err := requireSession(ctx, local)
	if err != nil {
		return failWith(Result{}, err)
	}

	current, err := s.cart.Current(ctx, local)
	if err == nil && len(current.Items) == 0 {
		current, err = s.cart.Load(ctx, local)
	}
	if err != nil {
		return failWith(Result{}, err)
	}
	if len(current.Items) == 0 {
		return failWith(Result{}, ErrEmptyCart)
	}

	sess := Session{
		ID:     s.newID(),
		CustID: creds.CustID,
		State:  StateFormEntry,
		Items:  current.Items,
		Totals: pricing.OrderTotals(current.Items),
	}
	s.save(ctx, local, &sess)

	s.logger.Debug("checkout started",
		zap.String("checkout_id", sess.ID),
		zap.String("cust_id", creds.CustID),
		zap.String("total", sess.Totals.Total.String()),
	)
	return Result{Session: sess}, nil
}

func (s *service) Get(ctx context.Context, local *session.Local, id string) (Result, error) {
	sess, _, err := s.load(ctx, local, id)
	if err != nil {
		return failWith(Result{}, err)
	}
	return Result{Session: sess}, nil
}

func (s *service) Submit(ctx context.Context, local *session.Local, id string, req SubmitRequest) (Result, error) {
	sess, creds, err := s.load(ctx, local, id)
	if err != nil {
		return failWith(Result{}, err)
	}
	res := Result{Session: sess}

	switch sess.State {
	case StateOrderPlaced:
		return res, nil
	case StateSubmitting:
		return failWith(res, ErrInvalidState)
	}

	if req.Method != MethodCOD && req.Method != MethodOnline {
		return failWith(res, ErrUnknownMethod)
	}

	delivery := req.Delivery.trimmed()
	if err := s.validate.Struct(delivery); err != nil {
		verr := MapValidationError(err)
		res.Notices.Error(notify.CategoryValidation, apperror.ToHTTP(verr).Message)
		return res, verr
	}

	// charge what is in the cart now, not what it held at Start
	current, err := s.cart.Current(ctx, local)
	if err != nil {
		return failWith(res, err)
	}
	if len(current.Items) == 0 {
		return failWith(res, ErrEmptyCart)
	}
	sess.Items = current.Items
	sess.Totals = pricing.OrderTotals(current.Items)

	sess.State = StateSubmitting
	sess.Method = req.Method
	sess.Delivery = &delivery
	s.save(ctx, local, &sess)

	if req.Method == MethodCOD {
		return s.placeCOD(ctx, local, creds, sess)
	}
	return s.openWidget(ctx, local, creds, sess)
}

func (s *service) placeCOD(ctx context.Context, local *session.Local, creds session.Credentials, sess Session) (Result, error) {
	orderNo, err := s.orders.Place(ctx, order.PlaceRequest{
		CustID:          creds.CustID,
		CartItems:       placeLines(sess.Items),
		DeliveryDetails: sess.Delivery,
		PaymentMethod:   string(MethodCOD),
		TotalAmount:     sess.Totals.Total.String(),
	})
	if err != nil {
		s.back(ctx, local, &sess)
		return failWith(Result{Session: sess}, err)
	}
	return s.complete(ctx, local, sess, orderNo)
}

func (s *service) openWidget(ctx context.Context, local *session.Local, creds session.Credentials, sess Session) (Result, error) {
	if s.gateway == nil {
		s.back(ctx, local, &sess)
		return failWith(Result{Session: sess}, ErrGatewayUnavailable)
	}

	user, _, _ := session.Load(ctx, local, session.UserKey)
	prefill := payment.Prefill{Name: user.Name, Email: user.Email, Phone: user.Phone}
	if prefill.Phone == "" {
		prefill.Phone = sess.Delivery.Phone
	}
	if prefill.Name == "" {
		prefill.Name = sess.Delivery.Name
	}

	gw, err := s.gateway.CreateOrder(ctx, payment.CreateOrderRequest{
		Amount:   sess.Totals.Total,
		Currency: payment.CurrencyINR,
		Receipt:  receipt(sess.ID),
		Notes: map[string]string{
			"custId":     creds.CustID,
			"checkoutId": sess.ID,
		},
		Customer: prefill,
		Lines:    paymentLines(sess.Items),
	})
	if err != nil {
		s.logger.Warn("create gateway order",
			zap.String("gateway", s.gateway.Name()),
			zap.String("checkout_id", sess.ID),
			zap.Error(err),
		)
		s.back(ctx, local, &sess)
		return failWith(Result{Session: sess}, err)
	}

	sess.Gateway = &gw
	s.save(ctx, local, &sess)

	return Result{
		Session: sess,
		Widget: &Widget{
			Order:       gw,
			Prefill:     prefill,
			Description: "Order payment",
		},
	}, nil
}

func receipt(checkoutID string) string {
	if len(checkoutID) > 8 {
		checkoutID = checkoutID[:8]
	}
	return "rcpt_" + checkoutID
}

func (s *service) Outcome(ctx context.Context, local *session.Local, id string, req OutcomeRequest) (Result, error) {
	sess, creds, err := s.load(ctx, local, id)
	if err != nil {
		return failWith(Result{}, err)
	}
	res := Result{Session: sess}

	if sess.State == StateOrderPlaced {
		return res, nil
	}
	if sess.State != StateSubmitting || sess.Gateway == nil {
		return failWith(res, ErrInvalidState)
	}

	switch req.Status {
	case OutcomeDismissed:
		s.back(ctx, local, &sess)
		res = Result{Session: sess}
		res.Notices.Info(notify.CategoryCancelled, "Payment cancelled")
		return res, nil

	case OutcomeFailed:
		s.back(ctx, local, &sess)
		msg := req.Description
		if msg == "" {
			msg = ErrPaymentFailed.Message
		}
		return failWith(Result{Session: sess}, ErrPaymentFailed.WithMessage(msg))

	case OutcomeSuccess:
		cb := req.Callback
		if cb.GatewayOrderID != "" && cb.GatewayOrderID != sess.Gateway.ID {
			s.logger.Warn("payment callback for another gateway order",
				zap.String("checkout_id", sess.ID),
				zap.String("expected", sess.Gateway.ID),
				zap.String("got", cb.GatewayOrderID),
			)
			s.back(ctx, local, &sess)
			return failWith(Result{Session: sess}, ErrGatewayOrderMismatch)
		}
		cb.GatewayOrderID = sess.Gateway.ID
		orderNo, err := s.gateway.Verify(ctx, payment.VerifyRequest{
			Callback: cb,
			CustID:   creds.CustID,
			Lines:    paymentLines(sess.Items),
			Delivery: sess.Delivery,
			Total:    sess.Totals.Total,
		})
		if err != nil {
			s.logger.Warn("verify payment",
				zap.String("checkout_id", sess.ID),
				zap.String("gateway_order_id", cb.GatewayOrderID),
				zap.Error(err),
			)
			s.back(ctx, local, &sess)
			return failWith(Result{Session: sess}, err)
		}
		return s.complete(ctx, local, sess, orderNo)
	}

	return failWith(res, ErrUnknownOutcome)
}

// complete finalizes a placed order. Side effects after the order exists
// are best effort.
func (s *service) complete(ctx context.Context, local *session.Local, sess Session, orderNo string) (Result, error) {
	sess.State = StateOrderPlaced
	sess.OrderNo = orderNo
	s.save(ctx, local, &sess)

	res := Result{Session: sess}
	cleared, err := s.cart.CompleteOrder(ctx, local)
	if err != nil {
		s.logger.Warn("clear cart after order", zap.String("order_no", orderNo), zap.Error(err))
	}
	res.Notices = append(res.Notices, cleared.Notices...)

	evt := OrderPlaced{
		OrderNo:   orderNo,
		CustID:    sess.CustID,
		BrowserID: local.BrowserID(),
		Method:    sess.Method,
		Total:     sess.Totals.Total.String(),
		Pieces:    cart.Count(sess.Items),
		PlacedAt:  s.now(),
	}
	if s.events != nil {
		if err := s.events.Record(ctx, orderNo, EventOrderPlaced, evt); err != nil {
			s.logger.Error("record order placed event", zap.String("order_no", orderNo), zap.Error(err))
		}
	}
	if s.feed != nil {
		s.feed.Broadcast(EventOrderPlaced, evt)
	}

	s.logger.Info("checkout complete",
		zap.String("checkout_id", sess.ID),
		zap.String("order_no", orderNo),
		zap.String("method", string(sess.Method)),
	)
	return res, nil
}
