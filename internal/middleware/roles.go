package middleware

import (
	"net/http"

	"jurisight/internal/reqctx"
	"jurisight/internal/utils/helpers"
	"jurisight/internal/workflow"
)

func OnlyRole(role workflow.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SkipGuards(r.Context()) {
				next.ServeHTTP(w, r)
				return
			}

			userRole, ok := reqctx.GetRole(r.Context())
			if !ok || userRole != role {
				helpers.Error(w, http.StatusForbidden, "access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func AnyRole(allowedRoles ...workflow.Role) func(http.Handler) http.Handler {
	roleSet := make(map[workflow.Role]struct{})
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SkipGuards(r.Context()) {
				next.ServeHTTP(w, r)
				return
			}

			userRole, ok := reqctx.GetRole(r.Context())
			if !ok {
				helpers.Error(w, http.StatusForbidden, "could not determine role")
				return
			}
			if _, found := roleSet[userRole]; !found {
				helpers.Error(w, http.StatusForbidden, "access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminFastLane must run after JWTAuth so the role is already in context.
func AdminFastLane(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if role, ok := reqctx.GetRole(r.Context()); ok && role == workflow.RoleAdmin {
			r = r.WithContext(WithSkipGuards(r.Context()))
		}
		next.ServeHTTP(w, r)
	})
}
