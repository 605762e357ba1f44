package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/http/middleware"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// newRequest builds a request carrying the identity AuthMiddleware would set.
func newRequest(t *testing.T, method, target string, body interface{}, userID uuid.UUID, role string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	if userID != uuid.Nil {
		ctx := middleware.WithClaims(req.Context(), &jwt.Claims{UserID: userID, Role: role, TokenID: "token-1"})
		req = req.WithContext(ctx)
	}
	return req
}

func withID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
