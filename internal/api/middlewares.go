package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/certification/internal/entity"
	"github.com/samandr77/microservices/certification/pkg/logger"
	"github.com/samandr77/microservices/certification/pkg/ratelimit"
)

var skipLogging = map[string]struct{}{
	"/api/health":  {},
	"/api/metrics": {},
}

type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (entity.User, error)
}

type Middleware struct {
	auth    Authenticator
	limiter *ratelimit.Limiter
}

// NewMiddleware builds the middleware set; a nil limiter disables upload rate limiting.
func NewMiddleware(auth Authenticator, limiter *ratelimit.Limiter) *Middleware {
	return &Middleware{
		auth:    auth,
		limiter: limiter,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx := logger.SetRequestID(r.Context(), requestID)
		w.Header().Set("X-Request-Id", requestID)

		if _, ok := skipLogging[r.URL.Path]; !ok {
			slog.InfoContext(ctx, "incoming request", "method", r.Method, "url", r.URL.String(), "user_ip", r.RemoteAddr)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			rec := recover()
			if rec != nil {
				slog.ErrorContext(ctx, "panic", "error", rec, "stack", string(debug.Stack()))
				SendErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec), errInternalRuText)
			}
		}(r.Context())

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control, X-Request-Id")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}

		next.ServeHTTP(w, r.WithContext(entity.SetIPToContext(r.Context(), ip)))
	})
}

// Auth validates the bearer token of the identity provider and puts the local user into the context.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accessToken, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Нет токена в заголовке")
			return
		}

		user, err := m.auth.Authenticate(ctx, accessToken)
		if err != nil {
			if errors.Is(err, entity.ErrUnauthorized) {
				SendErr(ctx, w, http.StatusUnauthorized, err, "Неверный токен")
			} else {
				SendErr(ctx, w, http.StatusInternalServerError, err, "Ошибка аутентификации")
			}

			return
		}

		ctx = logger.SetUserID(ctx, user.ID.String())
		ctx = entity.SetUserToContext(ctx, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole lets through users holding one of roles. Must run after Auth.
func (m *Middleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := entity.UserFromContext(ctx)
			if err != nil {
				SendErr(ctx, w, http.StatusUnauthorized, err, "Пользователь не авторизован")
				return
			}

			if !user.HasRole(roles...) {
				SendErr(ctx, w, http.StatusForbidden,
					fmt.Errorf("%w: user %s lacks role %v", entity.ErrForbidden, user.ID, roles), "Недостаточно прав")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit caps photo uploads per user, or per client address when no user is signed in.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		key := "ip:" + entity.IPFromContext(ctx)
		if user, err := entity.UserFromContext(ctx); err == nil {
			key = "user:" + user.ID.String()
		}

		if !m.limiter.Allow(ctx, key) {
			SendErr(ctx, w, http.StatusTooManyRequests, errors.New("upload rate limit exceeded"), "Слишком много запросов")
			return
		}

		next.ServeHTTP(w, r)
	})
}
