package order

import (
	"context"
	"errors"
	"io"
	"strings"

	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/response"
	"go-jewel-storefront/internal/session"

	"go.uber.org/zap"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	ListMine(ctx context.Context, local *session.Local) (ListResult, error)
	Items(ctx context.Context, local *session.Local, orderNo string) (Order, error)
	Place(ctx context.Context, req PlaceRequest) (string, error)

	ListAll(ctx context.Context, f AdminFilter) ([]Order, response.Pagination, error)
	ExportExcel(ctx context.Context, f AdminFilter, w io.Writer) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, logger: logger}
}

func custID(ctx context.Context, local *session.Local) (string, error) {
	if local == nil {
		return "", apperror.ErrSessionRequired
	}
	creds, ok := local.Credentials(ctx)
	if !ok {
		return "", apperror.ErrSessionRequired
	}
	return creds.CustID, nil
}

func (s *service) ListMine(ctx context.Context, local *session.Local) (ListResult, error) {
	id, err := custID(ctx, local)
	if err != nil {
		return ListResult{Orders: []Order{}}, err
	}

	orders, err := s.repo.ListForCustomer(ctx, id)
	if err != nil {
		s.logger.Warn("list customer orders", zap.String("cust_id", id), zap.Error(err))
		return ListResult{Orders: []Order{}}, err
	}
	return ListResult{Orders: orders, Count: len(orders)}, nil
}

func (s *service) Items(ctx context.Context, local *session.Local, orderNo string) (Order, error) {
	if _, err := custID(ctx, local); err != nil {
		return Order{}, err
	}
	if strings.TrimSpace(orderNo) == "" {
		return Order{}, ErrOrderNotFound
	}
	return s.repo.Get(ctx, orderNo)
}

func (s *service) Place(ctx context.Context, req PlaceRequest) (string, error) {
	orderNo, err := s.repo.Place(ctx, req)
	if err != nil {
		s.logger.Error("place order",
			zap.String("cust_id", req.CustID),
			zap.String("payment_method", req.PaymentMethod),
			zap.Error(err),
		)
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return "", err
		}
		return "", apperror.Wrap(err, ErrOrderFailed.Code, ErrOrderFailed.Message, ErrOrderFailed.HTTPStatus)
	}

	s.logger.Info("order placed",
		zap.String("order_no", orderNo),
		zap.String("cust_id", req.CustID),
		zap.String("payment_method", req.PaymentMethod),
	)
	return orderNo, nil
}

// matches applies the back-office search box and date range. Dates compare
// as strings on their YYYY-MM-DD prefix.
func (f AdminFilter) matches(o Order) bool {
	if f.Search != "" {
		hay := strings.ToLower(o.OrderNo + " " + o.CustID + " " + o.CustomerName)
		if !strings.Contains(hay, f.Search) {
			return false
		}
	}
	day := o.Date
	if len(day) >= 10 {
		day = day[:10]
	}
	if f.From != "" && day < f.From {
		return false
	}
	if f.To != "" && day > f.To {
		return false
	}
	return true
}

func (s *service) filtered(ctx context.Context, f AdminFilter) ([]Order, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Warn("list all orders", zap.Error(err))
		return nil, err
	}
	out := make([]Order, 0, len(all))
	for _, o := range all {
		if f.matches(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *service) ListAll(ctx context.Context, f AdminFilter) ([]Order, response.Pagination, error) {
	f = f.normalized()

	orders, err := s.filtered(ctx, f)
	if err != nil {
		return []Order{}, response.Pagination{}, err
	}

	start := (f.Page - 1) * f.Limit
	if start > len(orders) {
		start = len(orders)
	}
	end := start + f.Limit
	if end > len(orders) {
		end = len(orders)
	}

	meta := response.NewPaginationMeta(int64(len(orders)), f.Page, f.Limit)
	return orders[start:end], meta, nil
}

func (s *service) ExportExcel(ctx context.Context, f AdminFilter, w io.Writer) error {
	orders, err := s.filtered(ctx, f.normalized())
	if err != nil {
		return err
	}
	if err := writeWorkbook(orders, w); err != nil {
		s.logger.Error("write order export", zap.Error(err))
		return apperror.Wrap(err, ErrExportFailed.Code, ErrExportFailed.Message, ErrExportFailed.HTTPStatus)
	}
	return nil
}
