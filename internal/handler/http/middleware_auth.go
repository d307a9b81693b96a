package http

import (
	"net/http"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/service"
	"github.com/MKhiriev/go-matjip/internal/utils"
)

// auth enforces bearer-token authentication. Requests without a valid,
// unexpired token are answered with 401 before any handler runs; otherwise
// the proven identity is stored in the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, service.ErrTokenMissing)
			return
		}

		tokenString, ok := utils.ParseBearerToken(authHeader)
		if !ok {
			writeError(w, r, service.ErrTokenInvalid)
			return
		}

		identity, err := h.services.TokenService.Validate(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Int64("account_id", identity.AccountID).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

// optionalAuth attaches the identity when the request carries a valid
// token and lets the request through as anonymous otherwise.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := h.services.TokenService.Validate(r.Context(), tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("ignoring token on public route")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

// identityFrom returns the identity stored by [Handler.auth]. Routes
// behind auth always have one; a missing identity is treated as an invalid
// token.
func identityFrom(r *http.Request) (int64, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return 0, service.ErrTokenInvalid
	}
	return identity.AccountID, nil
}
