package middleware

import (
	"net/http"

	"github.com/enkonix/hr-backend-go/internal/domain/user"
	"github.com/enkonix/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// HROnly restricts a route to HR administrators.
func HROnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrHRPrivilegeRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleHR) {
			response.HandleError(w, user.ErrHRPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
