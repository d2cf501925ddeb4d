// Логирование HTTP-запросов
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/shared/logger"
)

type ResponseWriter struct {
	http.ResponseWriter
	Status int
	Size   int
}

func (w *ResponseWriter) WriteHeader(Status int) {
	w.Status = Status
	w.ResponseWriter.WriteHeader(Status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.Status == 0 {
		w.Status = http.StatusOK
	}
	Size, err := w.ResponseWriter.Write(b)
	w.Size += Size
	return Size, err
}

// requestInfo заполняется внутренними middleware (id пользователя после аутентификации).
type requestInfo struct {
	userID string
}

const requestInfoKey ctxKey = "request_info"

func setRequestUser(ctx context.Context, userID string) {
	if info, ok := ctx.Value(requestInfoKey).(*requestInfo); ok {
		info.userID = userID
	}
}

// LoggerMiddleware пишет в лог каждый запрос: метод, uri, статус, размер,
// длительность и id пользователя (если запрос аутентифицирован).
func LoggerMiddleware(loggerHTTP *logger.HTTPLogger) func(http.Handler) http.Handler {
	if loggerHTTP == nil {
		loggerHTTP = logger.NewHTTPLogger()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			info := &requestInfo{}
			wr := &ResponseWriter{ResponseWriter: w}
			next.ServeHTTP(wr, r.WithContext(context.WithValue(r.Context(), requestInfoKey, info)))

			if wr.Status == 0 {
				wr.Status = http.StatusOK
			}
			duration := time.Since(start).Seconds() * 1000
			loggerHTTP.LogRequest(r.Method, r.RequestURI, wr.Status, wr.Size, duration, info.userID)
		})
	}
}
