package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/sbilibin2017/gw-travel-planner/internal/logger"
)

// RecoverMiddleware turns a panic in a downstream handler into a generic 500.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.Log.Errorw("panic recovered",
				"method", r.Method,
				"uri", r.RequestURI,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			writeError(w, http.StatusInternalServerError, "Something went wrong!")
		}()

		next.ServeHTTP(w, r)
	})
}
