package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	serr "github.com/IvanChernomyrdin/go-recipe-api/internal/shared/errors"
)

// RateLimiter ограничивает частоту запросов по ключу (ip или пользователь).
type RateLimiter struct {
	rps   rate.Limit
	burst int
	byKey string // ip|user

	mu       sync.Mutex
	limiters map[string]*visitor
	idleTTL  time.Duration
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создаёт ограничитель; key: "ip" или "user".
func NewRateLimiter(rps float64, burst int, key string) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		byKey:    key,
		limiters: make(map[string]*visitor),
		idleTTL:  10 * time.Minute,
		now:      time.Now,
	}
}

// ByUser: лимит считается по пользователю; middleware нужно ставить после аутентификации.
func (rl *RateLimiter) ByUser() bool {
	return rl.byKey == "user"
}

// Allow сообщает, можно ли пропустить ещё один запрос с ключом k.
func (rl *RateLimiter) Allow(k string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, ok := rl.limiters[k]
	if !ok {
		rl.evict(now)
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.limiters[k] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// evict удаляет давно неактивные ключи. Вызывается под mu.
func (rl *RateLimiter) evict(now time.Time) {
	for k, v := range rl.limiters {
		if now.Sub(v.lastSeen) > rl.idleTTL {
			delete(rl.limiters, k)
		}
	}
}

// Middleware отвечает 429, если лимит ключа исчерпан.
// Для key=user анонимные запросы считаются по ip.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		k := clientIP(r)
		if rl.ByUser() {
			if u, ok := UserFromContext(r.Context()); ok {
				k = "user:" + u.ID.String()
			}
		}

		if !rl.Allow(k) {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, serr.ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
