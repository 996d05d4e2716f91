package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workshift-app/workshift-go/internal/domain/user"
	"github.com/workshift-app/workshift-go/internal/handler/http/response"
)

// RequireEmployee gates punch and break routes to employees.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrEmployeeAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrEmployeeAccessRequired)
			return
		}

		if user.Role(role) != user.RoleEmployee {
			response.HandleError(w, user.ErrEmployeeAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireEmployer gates company-wide reads to employers.
func RequireEmployer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrEmployerAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrEmployerAccessRequired)
			return
		}

		if user.Role(role) != user.RoleEmployer {
			response.HandleError(w, user.ErrEmployerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
