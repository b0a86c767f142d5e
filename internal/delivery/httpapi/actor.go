package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/altynmine/fuel-inventory-service/internal/domain"
	"github.com/google/uuid"
)

type actorContextKey struct{}

// ActorMiddleware resolves the acting identity from the X-Actor-ID and
// X-Actor-Roles headers set by the gateway. Authentication itself
// happens upstream.
func ActorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID, err := uuid.Parse(r.Header.Get("X-Actor-ID"))
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorResponse{
				Error: "missing or malformed X-Actor-ID header",
				Code:  "UNAUTHORIZED",
			})
			return
		}

		var roles []domain.Role
		for _, raw := range strings.Split(r.Header.Get("X-Actor-Roles"), ",") {
			role := domain.Role(strings.ToUpper(strings.TrimSpace(raw)))
			switch role {
			case domain.RoleOperator, domain.RoleManager, domain.RoleAdmin:
				roles = append(roles, role)
			}
		}
		if len(roles) == 0 {
			roles = []domain.Role{domain.RoleOperator}
		}

		actor := domain.Actor{ID: actorID, Roles: roles}
		ctx := context.WithValue(r.Context(), actorContextKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func actorFrom(r *http.Request) domain.Actor {
	actor, _ := r.Context().Value(actorContextKey{}).(domain.Actor)
	return actor
}
