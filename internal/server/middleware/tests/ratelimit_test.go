package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/models"
)

func TestRateLimiter_Burst(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 2, "ip")
	handler := rl.Middleware(testHandler(http.StatusOK, "ok"))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// другой адрес: свой лимит
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}

// Для key=user аутентифицированные запросы считаются по пользователю, а не по адресу
func TestRateLimiter_ByUser(t *testing.T) {
	rl := middleware.NewRateLimiter(0.001, 1, "user")
	require.True(t, rl.ByUser())

	user := models.User{ID: uuid.New(), IsActive: true}
	auth := middleware.TokenAuth(fakeAuth{users: map[string]models.User{"abc": user}})
	handler := auth(rl.Middleware(testHandler(http.StatusOK, "ok")))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	require.Equal(t, http.StatusOK, send("10.0.0.1:1"))
	require.Equal(t, http.StatusTooManyRequests, send("10.0.0.2:1"))
}
