package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"go-jewel-storefront/internal/pkg/response"
	"go-jewel-storefront/internal/session"

	"go.uber.org/zap"
)

const (
	listCacheTTL = 2 * time.Minute
	homeSize     = 8
)

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q ListQuery) ([]Product, response.Pagination, error)
	// Search is List driven by free text; an empty term finds nothing.
	Search(ctx context.Context, term string, q ListQuery) ([]Product, response.Pagination, error)
	Get(ctx context.Context, itemNo string) (Product, error)
	Home(ctx context.Context) (Home, error)
}

type service struct {
	repo   Repository
	cache  session.Store
	logger *zap.Logger
}

// NewService caches backend listings in cache when it is non-nil.
func NewService(repo Repository, cache session.Store, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, cache: cache, logger: logger}
}

func cacheKey(q ListQuery) string {
	return "catalog:" + q.values().Encode()
}

func (s *service) fetch(ctx context.Context, q ListQuery) ([]Product, error) {
	key := cacheKey(q)
	if s.cache != nil {
		var hit []Product
		ok, err := s.cache.Get(ctx, key, &hit)
		if err != nil {
			s.logger.Warn("read catalog cache", zap.String("key", key), zap.Error(err))
		}
		if ok {
			return hit, nil
		}
	}

	products, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, products, listCacheTTL); err != nil {
			s.logger.Warn("write catalog cache", zap.String("key", key), zap.Error(err))
		}
	}
	return products, nil
}

func page(products []Product, q ListQuery) ([]Product, response.Pagination) {
	meta := response.NewPaginationMeta(int64(len(products)), q.Page, q.Limit)
	start := (q.Page - 1) * q.Limit
	if start >= len(products) {
		return []Product{}, meta
	}
	end := start + q.Limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end], meta
}

func (s *service) List(ctx context.Context, q ListQuery) ([]Product, response.Pagination, error) {
	q = q.normalized()
	products, err := s.fetch(ctx, q)
	if err != nil {
		s.logger.Warn("list products", zap.Error(err))
		return nil, response.Pagination{}, err
	}
	items, meta := page(products, q)
	return items, meta, nil
}

func (s *service) Search(ctx context.Context, term string, q ListQuery) ([]Product, response.Pagination, error) {
	q.Q = term
	q = q.normalized()
	if q.Q == "" {
		return []Product{}, response.NewPaginationMeta(0, q.Page, q.Limit), nil
	}
	return s.List(ctx, q)
}

func (s *service) Get(ctx context.Context, itemNo string) (Product, error) {
	itemNo = strings.TrimSpace(itemNo)
	if itemNo == "" {
		return Product{}, ErrItemNoRequired
	}
	return s.repo.ByItemNo(ctx, itemNo)
}

func (s *service) Home(ctx context.Context) (Home, error) {
	products, err := s.fetch(ctx, ListQuery{})
	if err != nil {
		return Home{}, err
	}

	home := Home{
		Featured:   make([]Product, 0, homeSize),
		OnOffer:    make([]Product, 0, homeSize),
		Categories: []string{},
	}
	seen := map[string]bool{}
	for _, p := range products {
		if len(home.Featured) < homeSize && len(p.Images) > 0 {
			home.Featured = append(home.Featured, p)
		}
		if len(home.OnOffer) < homeSize && p.HasDiscount {
			home.OnOffer = append(home.OnOffer, p)
		}
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			home.Categories = append(home.Categories, p.Category)
		}
	}
	sort.Strings(home.Categories)
	return home, nil
}
