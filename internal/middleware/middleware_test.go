package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func validClaims(sub, role string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
}

func authRouter() *ginext.Engine {
	r := ginext.New("test")
	r.GET("/me", Auth(testSecret), func(c *ginext.Context) {
		id, err := UserID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ginext.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, ginext.H{"user_id": id, "role": Role(c)})
	})
	r.GET("/admin", Auth(testSecret), RequireRole(RoleAdmin), func(c *ginext.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r := authRouter()

	tests := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{name: "valid", token: signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("u1", "user")), want: http.StatusOK},
		{name: "missing", want: http.StatusUnauthorized},
		{name: "wrong secret", token: signToken(t, "other", jwt.SigningMethodHS256, validClaims("u1", "user")), want: http.StatusUnauthorized},
		{name: "wrong alg", token: signToken(t, testSecret, jwt.SigningMethodHS512, validClaims("u1", "user")), want: http.StatusUnauthorized},
		{name: "expired", token: signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "u1", "exp": time.Now().Add(-time.Minute).Unix(),
		}), want: http.StatusUnauthorized},
		{name: "no subject", token: signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "user", "exp": time.Now().Add(time.Hour).Unix(),
		}), want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(r, "/me", tt.token)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAuth_PutsIdentityInContext(t *testing.T) {
	r := authRouter()

	w := doGet(r, "/me", signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("u1", "user")))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"u1","role":"user"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	r := authRouter()

	w := doGet(r, "/admin", signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("u1", "user")))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doGet(r, "/admin", signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("a1", RoleAdmin)))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)))
	r.GET("/ping", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"request_id": c.GetString(requestIDKey)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"request_id":"req-42"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(Recovery(newTestLogger(t)), Metrics())
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestRecovery_ErrorVisibleToOuterMiddleware(t *testing.T) {
	var logged string
	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		c.Next()
		logged = c.GetString("error")
	}, Recovery(newTestLogger(t)))
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "panic: boom", logged)
}
