package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/clientedev/salasv2/config"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

func (h *AuthHandler) signJWT(role, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"role": role,
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.cfg.JWTSecret))
}

type AdminLoginReq struct {
	Password string `json:"password"`
}

// POST /admin/login
// O painel tem uma única senha de administração. Com hash bcrypt
// configurado ele é a fonte da verdade; a comparação em texto puro só
// existe para ambiente local sem hash gerado.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req AdminLoginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	ok := false
	switch {
	case h.cfg.AdminPasswordHash != "":
		ok = bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(req.Password)) == nil
	case h.cfg.AdminPassword != "":
		ok = req.Password == h.cfg.AdminPassword
	}
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	// mesma vida útil da sessão antiga do painel: 2 horas
	token, err := h.signJWT("admin", "Admin", 2*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_SIGN_FAILED"})
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "role": "admin"})
}
