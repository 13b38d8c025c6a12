package auth

import (
	"log/slog"
	"net/http"

	"github.com/jdelarosa/finanzas-api/internal"
	"github.com/jdelarosa/finanzas-api/internal/transport"
	"github.com/jdelarosa/finanzas-api/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// AuthMiddleware owns session verification for the request tree: it checks
// the bearer ID token once and passes the resulting uid down via
// internal.ContextWithUserID.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.Logger.Error("auth middleware: missing authorization token")
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		user, err := h.Service.ResolveUser(token)
		if err != nil {
			h.Logger.Error("token validation failed", "error", err)
			switch err {
			case ErrTokenExpired:
				h.WriteError(w, http.StatusUnauthorized, "token expired")
			default:
				h.WriteError(w, http.StatusUnauthorized, "invalid token")
			}
			return
		}

		ctx := internal.ContextWithUserID(r.Context(), user.UID)
		ctx = logger.With(ctx, "userID", user.UID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
