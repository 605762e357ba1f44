package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/radit-thy/G3-Carefinder-Backend/config"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/mocks"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(buf)
	return log
}

func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserIDFromContext(r.Context())
		tokenID, _ := GetTokenIDFromContext(r.Context())
		role, _ := GetRoleFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]string{
			"user_id":  userID.String(),
			"token_id": tokenID,
			"role":     role,
		})
	})
}

func TestAuthenticate(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: time.Hour})
	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateAccessToken(userID, "jane@example.com", "user")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		setup      func(*mocks.TokenRepository)
		wantStatus int
	}{
		{"missing header", "", nil, http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, nil, http.StatusUnauthorized},
		{"garbage token", "Bearer nope", nil, http.StatusUnauthorized},
		{
			name:   "revoked token",
			header: "Bearer " + token,
			setup: func(m *mocks.TokenRepository) {
				m.On("Exists", mock.Anything, userID, tokenID).Return(false, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "allow-list unavailable",
			header: "Bearer " + token,
			setup: func(m *mocks.TokenRepository) {
				m.On("Exists", mock.Anything, userID, tokenID).Return(false, errors.New("redis down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "valid token",
			header: "Bearer " + token,
			setup: func(m *mocks.TokenRepository) {
				m.On("Exists", mock.Anything, userID, tokenID).Return(true, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := new(mocks.TokenRepository)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			m := NewAuthMiddleware(newLogger(&bytes.Buffer{}), jwtService, tokens)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			m.Authenticate(echoIdentity()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, userID.String(), body["user_id"])
				assert.Equal(t, tokenID, body["token_id"])
				assert.Equal(t, "user", body["role"])
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	for role, want := range map[string]int{
		"admin":    http.StatusNoContent,
		"hospital": http.StatusForbidden,
		"user":     http.StatusForbidden,
	} {
		ctx := WithClaims(context.Background(), &jwt.Claims{UserID: uuid.New(), Role: role})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/rates", nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		RequireAdmin(ok).ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, role)
	}

	rec := httptest.NewRecorder()
	RequireAdmin(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { t.Fatal("preflight reached the handler") })
	rec := httptest.NewRecorder()
	NewCORSMiddleware().Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/rates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggingMiddleware(newLogger(&buf))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/v1/health", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
}
