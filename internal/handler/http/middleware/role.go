package middleware

import (
	"net/http"

	"github.com/globepay-hr/payroll-backend-go/internal/domain/user"
	"github.com/globepay-hr/payroll-backend-go/internal/handler/http/response"
)

// RequireManagement rejects tokens carrying an unrecognized role before the
// request reaches a handler. Services still apply the per-country policy.
func RequireManagement(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !user.IsManagementRole(actor.Role) {
			response.HandleError(w, user.ErrInsufficientPermissions)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireGlobalAdmin restricts a route to the unrestricted admin role.
func RequireGlobalAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := ActorFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if actor.Role != user.RoleAdmin {
			response.HandleError(w, user.ErrInsufficientPermissions)
			return
		}

		next.ServeHTTP(w, r)
	})
}
