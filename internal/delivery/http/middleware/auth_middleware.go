package middleware

import (
	"context"
	"net/http"

	"surgitrack/internal/delivery/dto"
	"surgitrack/internal/usecase"
	"surgitrack/pkg/response"
)

type contextKey string

const sessionUserKey contextKey = "session_user"

type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	cookieName  string
}

func NewAuthMiddleware(authUsecase usecase.AuthUsecase, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		cookieName:  cookieName,
	}
}

// RequireAuth rejects requests that carry no valid session cookie.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil {
			response.Unauthorized(w, "")
			return
		}

		user := m.authUsecase.Verify(cookie.Value)
		if user == nil {
			response.Unauthorized(w, "")
			return
		}

		ctx := context.WithValue(r.Context(), sessionUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionUser extracts the authenticated user from the context.
func GetSessionUser(ctx context.Context) (*dto.UserResponse, bool) {
	user, ok := ctx.Value(sessionUserKey).(*dto.UserResponse)
	return user, ok
}
