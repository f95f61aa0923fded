package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/workoutmanager/internal/auth"
	"github.com/2beens/workoutmanager/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type loginChecker interface {
	LoggedUser(ctx context.Context, token string) (*auth.User, error)
}

type AuthMiddlewareHandler struct {
	loginChecker loginChecker
	allowedPaths map[string]bool
	// read only routes open to anonymous users
	allowedGetPrefixes []string
	// routes only users with the given permission may use
	permissionPrefixes map[string]string
}

func NewAuthMiddlewareHandler(loginChecker loginChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		loginChecker: loginChecker,
		allowedPaths: map[string]bool{
			// misc handler:
			"/":        true,
			"/version": true,

			// login-logout:
			"/a/login":  true,
			"/a/logout": true,

			"/api/ingredient/search": true,
		},
		allowedGetPrefixes: []string{
			"/exercises",
		},
		permissionPrefixes: map[string]string{
			"/mcp": auth.PermManageNutrition,
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(r *http.Request) bool {
	if h.allowedPaths[r.URL.Path] {
		return true
	}
	if r.Method != http.MethodGet {
		return false
	}
	for _, prefix := range h.allowedGetPrefixes {
		if r.URL.Path == prefix || strings.HasPrefix(r.URL.Path, prefix+"/") {
			return true
		}
	}
	return false
}

func (h *AuthMiddlewareHandler) requiredPermission(path string) string {
	for prefix, perm := range h.permissionPrefixes {
		if strings.HasPrefix(path, prefix) {
			return perm
		}
	}
	return ""
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			authToken := r.Header.Get(auth.TokenHeader)

			if h.pathIsAlwaysAllowed(r) {
				// anonymous access, but still know the user if the token is there
				if authToken != "" {
					if user, err := h.loginChecker.LoggedUser(ctx, authToken); err == nil {
						r = r.WithContext(auth.ContextWithUser(r.Context(), user))
					}
				}
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			user, err := h.loginChecker.LoggedUser(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrNotLogged) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					span.SetStatus(codes.Error, "not-logged")
				} else {
					log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
					span.SetStatus(codes.Error, "check-logged-err")
					span.RecordError(err)
				}
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}
			span.SetAttributes(attribute.Int("user.id", user.ID))

			if perm := h.requiredPermission(r.URL.Path); perm != "" && !user.HasPermission(perm) {
				log.Warnf("[auth middleware] user %d lacks permission %s => %s", user.ID, perm, r.URL.Path)
				http.Error(w, "forbidden", http.StatusForbidden)
				span.SetStatus(codes.Error, "missing-permission")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), user)))
		})
	}
}
