package middleware

import (
	"context"
	"errors"
	"net/http"
	"shareit/config"
	"shareit/infras/jwt"
	"shareit/infras/otel"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/transport/http/response"
	"strings"
)

// Identity resolves the acting user of a request.
type Identity interface {
	Identify(next http.Handler) http.Handler
	APIKey(next http.Handler) http.Handler
}

type identityImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	cfg        *config.Config
}

func NewIdentityMiddleware(jwtService jwt.JWT, otel otel.Otel, cfg *config.Config) Identity {
	return &identityImpl{
		jwtService: jwtService,
		otel:       otel,
		cfg:        cfg,
	}
}

// Identify puts the acting user id into the request context. A bearer token
// wins over the identity header when both are sent.
func (m *identityImpl) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "identity.middleware")
		defer scope.End()

		userID, err := m.resolve(request)
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("user.id", userID)

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, userID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *identityImpl) resolve(request *http.Request) (string, error) {
	if authHeader := request.Header.Get(constant.RequestHeaderAuthorization); authHeader != "" {
		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return "", failure.Unauthorized("Invalid authorization header format") // nolint:wrapcheck
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				return "", failure.Unauthorized("Token has expired") // nolint:wrapcheck
			case errors.Is(err, jwt.ErrInvalidClaim):
				return "", failure.Unauthorized("Invalid token claims") // nolint:wrapcheck
			default:
				return "", failure.Unauthorized("Invalid token") // nolint:wrapcheck
			}
		}

		return claims.UserID, nil
	}

	header := m.cfg.App.IdentityHeader
	if header == "" {
		header = constant.RequestHeaderSharerID
	}

	userID := strings.TrimSpace(request.Header.Get(header))
	if userID == "" {
		return "", failure.Unauthorized("Missing " + header + " header") // nolint:wrapcheck
	}

	return userID, nil
}

// APIKey guards internal endpoints. With no key configured it lets every
// request through.
func (m *identityImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.cfg.App.APIKey == "" {
			next.ServeHTTP(writer, request)

			return
		}

		if request.Header.Get(constant.RequestHeaderAPIKey) != m.cfg.App.APIKey {
			response.WithError(writer, failure.InvalidAPIKey)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
