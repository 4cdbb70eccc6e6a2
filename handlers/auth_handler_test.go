package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clientedev/salasv2/config"
)

func postLogin(t *testing.T, h *AuthHandler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.AdminLogin(e.NewContext(req, rec))
}

func TestAdminLoginPlainPassword(t *testing.T) {
	h := NewAuthHandler(&config.Config{JWTSecret: "test-secret", AdminPassword: "s3nha"})

	rec, err := postLogin(t, h, `{"password":"s3nha"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
	assert.Equal(t, "admin", body["role"])
}

func TestAdminLoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3nha"), bcrypt.MinCost)
	require.NoError(t, err)
	h := NewAuthHandler(&config.Config{JWTSecret: "test-secret", AdminPasswordHash: string(hash)})

	rec, err := postLogin(t, h, `{"password":"s3nha"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	h := NewAuthHandler(&config.Config{JWTSecret: "test-secret", AdminPassword: "s3nha"})

	_, err := postLogin(t, h, `{"password":"errada"}`)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAdminLoginRejectsWhenNoPasswordConfigured(t *testing.T) {
	// sem senha configurada ninguém entra, nem com payload vazio
	h := NewAuthHandler(&config.Config{JWTSecret: "test-secret"})

	_, err := postLogin(t, h, `{"password":"qualquer"}`)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
