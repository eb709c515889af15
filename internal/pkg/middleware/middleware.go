package middleware

import (
	"fmt"

	"ticketing-service/config"
	"ticketing-service/internal/pkg/errors"
	"ticketing-service/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

// Middleware resolves the caller identity against the user service.
// The service itself never parses credentials; it only trusts the
// (user_id, role) pair the collaborator hands back.
type Middleware struct {
	Log        *otelzap.Logger
	HttpClient *circuit.HTTPClient
	CfgUser    *config.UserServiceConfig
}

type tokenValidation struct {
	IsValid bool   `json:"is_valid"`
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"`
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if len(auth) < 8 {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("missing bearer token"))
	}

	// strip "Bearer " prefix
	token := auth[7:]

	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", m.CfgUser.Host, m.CfgUser.Port, token)
	resp, err := m.HttpClient.Get(url)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid token"))
	}

	var validation tokenValidation
	if err := json.NewDecoder(resp.Body).Decode(&validation); err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error decode validation response: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !validation.IsValid {
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid token"))
	}

	ctx.Locals("user_id", validation.UserID)
	ctx.Locals("role", validation.Role)

	return ctx.Next()
}

// RequireAdmin must run after ValidateToken.
func (m *Middleware) RequireAdmin(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != "admin" && role != "superadmin" {
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("admin role required"))
	}

	return ctx.Next()
}
