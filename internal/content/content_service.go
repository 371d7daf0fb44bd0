package content

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/notify"

	"go.uber.org/zap"
)

type Source string

const (
	SourceServer   Source = "server"
	SourceCache    Source = "cache"
	SourceDefaults Source = "defaults"
)

type Result struct {
	Content   Document `json:"content"`
	MediaBase string   `json:"mediaBase"`
	Source    Source   `json:"source"`

	Notices notify.List `json:"-"`
}

type UploadResult struct {
	URL      string `json:"url"`
	MediaURL string `json:"mediaUrl"`

	Notices notify.List `json:"-"`
}

//go:generate mockgen -source=content_service.go -destination=../mock/content/content_service_mock.go -package=mock
type Service interface {
	// Get never fails: without the backend it serves the last good document or the defaults.
	Get(ctx context.Context) Result
	MediaURL(path string) string
	Update(ctx context.Context, doc Document) (Result, error)
	Upload(ctx context.Context, filename string, file io.Reader) (UploadResult, error)
}

type Deps struct {
	Repo      Repository
	MediaBase string
	TTL       time.Duration
	Logger    *zap.Logger
	Now       func() time.Time
}

type service struct {
	repo      Repository
	mediaBase string
	ttl       time.Duration
	logger    *zap.Logger
	now       func() time.Time

	mu        sync.Mutex
	doc       Document
	fetchedAt time.Time
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("content repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.TTL <= 0 {
		deps.TTL = 5 * time.Minute
	}
	return &service{
		repo:      deps.Repo,
		mediaBase: strings.TrimRight(deps.MediaBase, "/"),
		ttl:       deps.TTL,
		logger:    deps.Logger,
		now:       deps.Now,
	}
}

func (s *service) Get(ctx context.Context) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc != nil && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.result(s.doc, SourceCache)
	}

	server, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Warn("fetch content", zap.Error(err))
		if s.doc != nil {
			return s.result(s.doc, SourceCache)
		}
		return s.result(Defaults(), SourceDefaults)
	}

	s.doc = Document(Merge(Defaults(), server))
	s.fetchedAt = s.now()
	return s.result(s.doc, SourceServer)
}

func (s *service) result(doc Document, src Source) Result {
	return Result{
		Content:   Document(clone(map[string]any(doc)).(map[string]any)),
		MediaBase: s.mediaBase,
		Source:    src,
	}
}

// MediaURL resolves a stored media path against the media host. Absolute
// and data URLs are returned unchanged.
func (s *service) MediaURL(path string) string {
	return ResolveMedia(s.mediaBase, path)
}

func ResolveMedia(base, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	lower := strings.ToLower(path)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "//") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

func (s *service) Update(ctx context.Context, doc Document) (Result, error) {
	if len(doc) == 0 {
		res := s.Get(ctx)
		res.Notices.Error(notify.CategoryValidation, ErrEmptyDocument.Message)
		return res, ErrEmptyDocument
	}

	if err := s.repo.Put(ctx, doc); err != nil {
		s.logger.Warn("save content", zap.Error(err))
		res := s.Get(ctx)
		res.Notices.Error(notify.CategoryFailure, apperror.ToHTTP(err).Message)
		return res, err
	}

	s.mu.Lock()
	s.doc = nil
	s.mu.Unlock()

	res := s.Get(ctx)
	res.Notices.Success(notify.CategoryUpdated, "Content saved")
	return res, nil
}

func (s *service) Upload(ctx context.Context, filename string, file io.Reader) (UploadResult, error) {
	if file == nil || filename == "" {
		var res UploadResult
		res.Notices.Error(notify.CategoryValidation, ErrFileRequired.Message)
		return res, ErrFileRequired
	}

	url, err := s.repo.Upload(ctx, filename, file)
	if err != nil {
		s.logger.Warn("upload content media", zap.String("filename", filename), zap.Error(err))
		var res UploadResult
		res.Notices.Error(notify.CategoryFailure, apperror.ToHTTP(err).Message)
		return res, err
	}

	res := UploadResult{URL: url, MediaURL: s.MediaURL(url)}
	res.Notices.Success(notify.CategoryAdded, filename+" uploaded")
	return res, nil
}
