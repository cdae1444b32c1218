package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/certification/pkg/logger"
)

// JWTRoundTripper signs outgoing requests with a service token and propagates the request id.
type JWTRoundTripper struct {
	Transport http.RoundTripper
	Token     string
}

func NewJWTRoundTripper(transport http.RoundTripper, token string) *JWTRoundTripper {
	return &JWTRoundTripper{Transport: transport, Token: token}
}

func (j *JWTRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	r = r.Clone(ctx)

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	if j.Token != "" {
		r.Header.Set("Authorization", "Bearer "+j.Token)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := j.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
	)

	return resp, nil
}
