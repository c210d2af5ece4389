package events

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks a Google-signed OIDC token for audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// RequirePushToken rejects push deliveries whose bearer token is not a valid OIDC
// token for audience. Pub/Sub push subscriptions and Eventarc attach such a token
// when configured with a service account.
func RequirePushToken(validate TokenValidator, audience string, next http.Handler) http.Handler {
	if validate == nil {
		validate = idtoken.Validate
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		payload, err := validate(r.Context(), strings.TrimSpace(token), audience)
		if err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Str("component", "PushHandler").Msg("rejected push token")
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		logger := zerolog.Ctx(r.Context()).With().Str("push_subject", payload.Subject).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}
