package middleware

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

const panicBody = `{"detail":"Oops! Something went wrong. Please try again later."}` + "\n"

type RecoverMiddleware struct {
	logs *zap.SugaredLogger
}

func NewRecoverMiddleware(logger *zap.SugaredLogger) *RecoverMiddleware {
	return &RecoverMiddleware{
		logs: logger,
	}
}

// Recover turns a panicking handler into a 500 response.
func (m *RecoverMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			requestId, _ := r.Context().Value(RequestIDKey).(string)
			m.logs.Errorw("handler panicked",
				"panic", rec,
				"stack", string(debug.Stack()),
				"path", r.URL.Path,
				"request_id", requestId)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(panicBody))
		}()

		next.ServeHTTP(w, r)
	})
}
