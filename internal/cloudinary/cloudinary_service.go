package cloudinary

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

//go:generate mockgen -source=cloudinary_service.go -destination=../mock/cloudinary/cloudinary_service_mock.go -package=mock
type Service interface {
	UploadImage(ctx context.Context, file io.Reader, filename string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type service struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewService(cloudName, apiKey, apiSecret, folder string) (Service, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &service{
		cld:    cld,
		folder: folder,
	}, nil
}

// UploadImage uploads a content image (hero slides, banners) and returns its secure URL.
func (s *service) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	uploadResult, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       s.folder,
		PublicID:     PublicIDFor(filename),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if uploadResult.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image: %s", uploadResult.Error.Message)
	}

	return uploadResult.SecureURL, nil
}

func (s *service) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

var unsafeID = regexp.MustCompile(`[^a-z0-9_-]+`)

// PublicIDFor turns an uploaded file name into a stable public id:
// "Hero Slide 1.JPG" becomes "hero-slide-1".
func PublicIDFor(filename string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	id := unsafeID.ReplaceAllString(strings.ToLower(base), "-")
	id = strings.Trim(id, "-")
	if id == "" {
		return "upload"
	}
	return id
}

// ExtractPublicID returns "folder/name" from a delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v1234567890/folder/name.jpg.
// It returns "" for URLs that are not Cloudinary uploads.
func ExtractPublicID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	i := 0
	for i < len(parts) && parts[i] != "upload" {
		i++
	}
	if i >= len(parts)-1 {
		return ""
	}
	rest := parts[i+1:]

	// drop transformations and the version segment
	for len(rest) > 1 && isTransformation(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) > 1 && isVersion(rest[0]) {
		rest = rest[1:]
	}

	id := strings.Join(rest, "/")
	return strings.TrimSuffix(id, path.Ext(id))
}

var (
	versionRe        = regexp.MustCompile(`^v\d+$`)
	transformationRe = regexp.MustCompile(`^(c|w|h|q|f|g|e|ar|dpr|t)_[^/]*$`)
)

func isVersion(s string) bool { return versionRe.MatchString(s) }
func isTransformation(s string) bool {
	return strings.Contains(s, ",") || transformationRe.MatchString(s)
}
