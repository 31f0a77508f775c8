package middleware

import (
	"net/http"

	"github.com/tabledesk/tabledesk-backend/api/responses"
	pkgerrors "github.com/tabledesk/tabledesk-backend/pkg/errors"
	"github.com/tabledesk/tabledesk-backend/pkg/logger"
)

// RequireRole rejects requests whose actor role is not exactly the given role.
// Roles carry no hierarchy: an admin is not implicitly a manager.
func RequireRole(role string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromContext(r.Context()) != role {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
