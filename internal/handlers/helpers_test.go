package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/ctechrnd/payments-backend/internal/middleware"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// asUser stamps the request with an authenticated caller, the way the auth
// middleware would.
func asUser(r *http.Request, userID string) *http.Request {
	ctx := middleware.WithAuthContext(r.Context(), middleware.AuthContext{
		UserID:        userID,
		Authenticated: true,
	})
	return r.WithContext(ctx)
}
