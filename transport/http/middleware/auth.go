package middleware

import (
	"crypto/subtle"
	"net/http"

	"aperture/config"
	"aperture/infras/otel"
	"aperture/shared/constant"
	"aperture/shared/failure"
	"aperture/transport/http/response"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey guards the editor surface with a single shared key.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "apikey.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "apikey",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == "" {
			err := failure.Unauthorized("Missing API key")
			response.WithError(writer, err)

			scope.TraceError(err)

			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.AdminAPIKey)) != 1 {
			err := failure.Unauthorized("Invalid API key")
			response.WithError(writer, err)

			scope.TraceError(err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
