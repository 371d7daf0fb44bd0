package inventory

import (
	"context"
	"errors"
	"io"
	"strings"

	"go-jewel-storefront/internal/catalog"
	"go-jewel-storefront/internal/cloudinary"
	"go-jewel-storefront/internal/pricing"

	"go.uber.org/zap"
)

// RateSource resolves the live metal rate; *pricing.RateLookup satisfies it.
type RateSource interface {
	Lookup(ctx context.Context, metal, purity string) pricing.Rate
}

//go:generate mockgen -source=inventory_service.go -destination=../mock/inventory/inventory_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q catalog.ListQuery) ([]catalog.Product, error)
	FetchByItemNo(ctx context.Context, itemNo string) (Record, error)
	PricePreview(ctx context.Context, req PreviewRequest) Preview
	// AddToInventory only saves when the metal rate is known.
	AddToInventory(ctx context.Context, req AddRequest) (Preview, error)
	// Delete removes the product, then its Cloudinary images on a best-effort basis.
	Delete(ctx context.Context, itemNo string) error

	UploadImage(ctx context.Context, filename string, file io.Reader) (string, error)
	Image(ctx context.Context, id string) (Image, error)
	DeleteImage(ctx context.Context, id string) error
}

type Deps struct {
	Repo    Repository
	Catalog catalog.Repository
	Rates   RateSource
	// Images is optional; without it uploads go to the backend.
	Images cloudinary.Service
	Logger *zap.Logger
}

type service struct {
	repo    Repository
	catalog catalog.Repository
	rates   RateSource
	images  cloudinary.Service
	logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil || deps.Catalog == nil || deps.Rates == nil {
		panic("inventory: repository, catalog and rates are required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		repo:    deps.Repo,
		catalog: deps.Catalog,
		rates:   deps.Rates,
		images:  deps.Images,
		logger:  deps.Logger,
	}
}

func (s *service) List(ctx context.Context, q catalog.ListQuery) ([]catalog.Product, error) {
	return s.catalog.List(ctx, q)
}

func (s *service) FetchByItemNo(ctx context.Context, itemNo string) (Record, error) {
	itemNo = strings.TrimSpace(itemNo)
	if itemNo == "" {
		return Record{}, ErrItemNotFound
	}
	return s.repo.FetchByItemNo(ctx, itemNo)
}

func (s *service) PricePreview(ctx context.Context, req PreviewRequest) Preview {
	rate := s.rates.Lookup(ctx, req.Metal, req.Purity)
	return Preview{Rate: rate, Breakdown: pricing.Calculate(req.input(rate))}
}

func (s *service) AddToInventory(ctx context.Context, req AddRequest) (Preview, error) {
	preview := s.PricePreview(ctx, req.PreviewRequest)
	if !preview.Breakdown.Saveable {
		s.logger.Info("refusing to list item without a known rate",
			zap.String("item_no", req.ItemNo),
			zap.String("rate_status", string(preview.Rate.Status)),
		)
		return preview, ErrRateUnknown
	}

	if err := s.repo.Add(ctx, req, preview.Breakdown); err != nil {
		s.logger.Warn("add to inventory", zap.String("item_no", req.ItemNo), zap.Error(err))
		return preview, err
	}
	s.logger.Info("item listed",
		zap.String("item_no", req.ItemNo),
		zap.String("grand_total", preview.Breakdown.GrandTotal.StringFixed(2)),
	)
	return preview, nil
}

func cloudinaryID(imageURL string) string {
	if !strings.Contains(imageURL, "res.cloudinary.com") {
		return ""
	}
	return cloudinary.ExtractPublicID(imageURL)
}

func (s *service) Delete(ctx context.Context, itemNo string) error {
	p, err := s.catalog.ByItemNo(ctx, itemNo)
	if errors.Is(err, catalog.ErrProductNotFound) {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, itemNo); err != nil {
		s.logger.Warn("delete product", zap.String("item_no", itemNo), zap.Error(err))
		return err
	}

	if s.images == nil {
		return nil
	}
	for _, img := range p.Images {
		id := cloudinaryID(img)
		if id == "" {
			continue
		}
		if err := s.images.DeleteImage(ctx, id); err != nil {
			s.logger.Warn("cleanup product image", zap.String("public_id", id), zap.Error(err))
		}
	}
	return nil
}

func (s *service) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	if file == nil || filename == "" {
		return "", ErrFileRequired
	}
	if s.images != nil {
		return s.images.UploadImage(ctx, file, filename)
	}
	return s.repo.Upload(ctx, filename, file)
}

func (s *service) Image(ctx context.Context, id string) (Image, error) {
	return s.repo.Image(ctx, id)
}

func (s *service) DeleteImage(ctx context.Context, id string) error {
	return s.repo.DeleteImage(ctx, id)
}
