package apiclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-jewel-storefront/internal/apiclient"
	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		override string
		want     string
	}{
		{"development", "development", "", apiclient.DevelopmentBaseURL},
		{"staging", "staging", "", apiclient.StagingBaseURL},
		{"production", "production", "", apiclient.ProductionBaseURL},
		{"unknown_env_falls_back_to_dev", "qa", "", apiclient.DevelopmentBaseURL},
		{"override_wins", "production", "http://10.0.0.5:5000/api/", "http://10.0.0.5:5000/api"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apiclient.ResolveBaseURL(tt.env, tt.override))
		})
	}
}

func TestMediaBase(t *testing.T) {
	assert.Equal(t, "https://api.vardhamanjewellers.in", apiclient.MediaBase(apiclient.ProductionBaseURL))
	assert.Equal(t, "http://cdn.local", apiclient.MediaBase("http://cdn.local/"))
}

func TestClient_Do(t *testing.T) {
	t.Run("attaches_bearer_and_decodes_envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			assert.Equal(t, "/cart/C1", r.URL.Path)
			_, _ = io.WriteString(w, `{"success":true,"data":[{"ItemNo":"R1"}]}`)
		}))
		defer srv.Close()

		client := apiclient.New(apiclient.Options{
			BaseURL: srv.URL,
			Tokens:  func(context.Context) string { return "tok-1" },
		})

		var env apiclient.Envelope[[]map[string]any]
		require.NoError(t, client.Get(context.Background(), "/cart/C1", &env))
		assert.True(t, env.OK())
		assert.Len(t, env.Data, 1)
		assert.NoError(t, env.Err())
	})

	t.Run("no_token_no_header", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		client := apiclient.New(apiclient.Options{BaseURL: srv.URL})
		assert.NoError(t, client.Delete(context.Background(), "/cart/9", nil))
	})

	t.Run("server_message_surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"success":false,"message":"Item already in cart"}`)
		}))
		defer srv.Close()

		client := apiclient.New(apiclient.Options{BaseURL: srv.URL})
		err := client.Post(context.Background(), "/cart/add", map[string]any{"itemNo": "R1"}, nil)
		require.Error(t, err)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
		assert.Equal(t, apperror.CodeUpstream, httpErr.Code)
		assert.Equal(t, "Item already in cart", httpErr.Message)
		assert.Equal(t, http.StatusConflict, apiclient.StatusOf(err))
	})

	t.Run("nested_error_message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"error":{"message":"db down"}}`)
		}))
		defer srv.Close()

		client := apiclient.New(apiclient.Options{BaseURL: srv.URL})
		err := client.Get(context.Background(), "/products", nil)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadGateway, httpErr.Status)
		assert.Equal(t, "db down", httpErr.Message)
	})

	t.Run("generic_fallback_message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, `<html>bad gateway</html>`)
		}))
		defer srv.Close()

		client := apiclient.New(apiclient.Options{BaseURL: srv.URL})
		err := client.Get(context.Background(), "/content", nil)
		assert.Equal(t, "Something went wrong. Please try again", apperror.ToHTTP(err).Message)
	})

	t.Run("unauthorized_clears_session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		store := session.NewMemoryStore()
		local := session.NewLocal(store, "b1")
		ctx := session.WithLocal(context.Background(), local)
		require.NoError(t, local.SaveSession(ctx, "stale", session.User{CustID: "C1"}))

		client := apiclient.New(apiclient.Options{
			BaseURL:        srv.URL,
			Tokens:         apiclient.SessionTokens,
			OnUnauthorized: apiclient.ClearSessionOnUnauthorized(nil),
		})

		err := client.Get(ctx, "/auth/me", nil)
		assert.True(t, errors.Is(err, apperror.ErrSessionExpired))
		assert.Empty(t, local.Token(ctx))
	})
}

func TestClient_Upload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer f.Close()
		body, _ := io.ReadAll(f)
		assert.Equal(t, "hero.jpg", hdr.Filename)
		assert.Equal(t, "jpegbytes", string(body))
		_, _ = io.WriteString(w, `{"success":true,"data":{"url":"/uploads/hero.jpg"}}`)
	}))
	defer srv.Close()

	client := apiclient.New(apiclient.Options{BaseURL: srv.URL})
	var env apiclient.Envelope[struct {
		URL string `json:"url"`
	}]
	err := client.Upload(context.Background(), "/content/upload", "file", "hero.jpg", strings.NewReader("jpegbytes"), &env)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/hero.jpg", env.Data.URL)
}

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 0x50})
	}))
	defer srv.Close()

	client := apiclient.New(apiclient.Options{BaseURL: srv.URL})
	raw, ct, err := client.Fetch(context.Background(), "/images/7")
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, []byte{0x89, 0x50}, raw)
}

func TestClient_BodyLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":"`+strings.Repeat("x", 64)+`"}`)
	}))
	defer srv.Close()

	t.Run("oversized_body_is_upstream_error", func(t *testing.T) {
		client := apiclient.New(apiclient.Options{BaseURL: srv.URL, MaxBodyBytes: 32})
		var env apiclient.Envelope[string]
		err := client.Get(context.Background(), "/content", &env)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, apperror.ToHTTP(err).Status)
		assert.Empty(t, env.Data)
	})

	t.Run("within_limit", func(t *testing.T) {
		client := apiclient.New(apiclient.Options{BaseURL: srv.URL, MaxBodyBytes: 1024})
		var env apiclient.Envelope[string]
		require.NoError(t, client.Get(context.Background(), "/content", &env))
		assert.Len(t, env.Data, 64)
	})
}
