package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/domain/model"
	pkgAuth "github.com/vantran-dev/storefront/internal/pkg/auth"
	"github.com/vantran-dev/storefront/internal/server/http/response"
	testhelpers "github.com/vantran-dev/storefront/internal/test/facades"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var respond = response.NewResponder("UTC")

func TestAuthRequired(t *testing.T) {
	router := gin.New()
	router.Use(AuthRequired(testhelpers.AuthFacadeStub{}, respond))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	router = gin.New()
	router.Use(AuthRequired(testhelpers.AuthFacadeStub{
		VerifyTokenFn: func(string) (*pkgAuth.Principal, error) {
			return nil, pkgAuth.ErrInvalidToken
		},
	}, respond))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d", resp.Code)
	}

	var stored *pkgAuth.Principal
	router = gin.New()
	router.Use(AuthRequired(testhelpers.AuthFacadeStub{
		VerifyTokenFn: func(token string) (*pkgAuth.Principal, error) {
			if token != "abc" {
				t.Fatalf("unexpected token %q", token)
			}
			return &pkgAuth.Principal{UserID: 42, Role: model.RoleCustomer}, nil
		},
	}, respond))
	router.GET("/", func(c *gin.Context) {
		if v, ok := c.Get(PrincipalContextKey); ok {
			stored = v.(*pkgAuth.Principal)
		}
		c.Status(http.StatusOK)
	})
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if stored == nil || stored.UserID != 42 {
		t.Fatalf("expected principal stored in context, got %+v", stored)
	}
}

func TestAdminRequired(t *testing.T) {
	serve := func(principal *pkgAuth.Principal) *httptest.ResponseRecorder {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if principal != nil {
				c.Set(PrincipalContextKey, principal)
			}
		})
		router.Use(AdminRequired(respond))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
		return resp
	}

	if resp := serve(nil); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without principal, got %d", resp.Code)
	}
	if resp := serve(&pkgAuth.Principal{UserID: 1, Role: model.RoleCustomer}); resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customer, got %d", resp.Code)
	}
	if resp := serve(&pkgAuth.Principal{UserID: 1, Role: model.RoleAdmin}); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.Code)
	}
}

func TestExtractToken(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if token := extractToken(c); token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}

	c.Request.Header.Set("Authorization", "Bearer abc")
	if token := extractToken(c); token != "abc" {
		t.Fatalf("expected token from header, got %q", token)
	}

	c.Request.Header.Set("Authorization", "Basic abc")
	if token := extractToken(c); token != "" {
		t.Fatalf("expected empty token for non-bearer scheme, got %q", token)
	}
}

func TestDecompressRequest(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("payload"))
	_ = gz.Close()

	router := gin.New()
	router.Use(DecompressRequest())
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(buf.Bytes()))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body != "payload" {
		t.Fatalf("expected decompressed body, got %q", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("garbage")))
	req.Header.Set("Content-Encoding", "gzip")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for corrupt payload, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("plain")))
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || body != "plain" {
		t.Fatalf("expected plain body to pass through, got %d %q", resp.Code, body)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestLogger(logger))
	router.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/products", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	logged := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte(`"path":"/products"`)) {
		t.Fatalf("expected request path in log output, got %s", logged)
	}
}
