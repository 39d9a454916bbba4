package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-travel-planner/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The handler's response is held back until the transaction is resolved:
// it is sent after a successful commit, or after a rollback when the handler
// answered with an error status. A failed commit replaces it with a 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			scope := &txScope{tx: tx}
			bw := &bufferedResponseWriter{header: w.Header(), status: http.StatusOK}
			next.ServeHTTP(bw, r.WithContext(context.WithValue(r.Context(), txKey{}, scope)))

			if bw.status >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flushTo(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.Header().Del("Content-Length")
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			for _, fn := range scope.onCommit {
				fn()
			}
			bw.flushTo(w)
		})
	}
}

// bufferedResponseWriter records a response so it can be sent or dropped later.
type bufferedResponseWriter struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (bw *bufferedResponseWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedResponseWriter) WriteHeader(code int) {
	if bw.wroteHeader {
		return
	}
	bw.wroteHeader = true
	bw.status = code
}

func (bw *bufferedResponseWriter) Write(b []byte) (int, error) {
	bw.wroteHeader = true
	return bw.body.Write(b)
}

func (bw *bufferedResponseWriter) flushTo(w http.ResponseWriter) {
	w.WriteHeader(bw.status)
	if _, err := w.Write(bw.body.Bytes()); err != nil {
		logger.Log.Errorw("failed to write response", "error", err)
	}
}

type txKey struct{}

type txScope struct {
	tx       *sqlx.Tx
	onCommit []func()
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	if scope, ok := ctx.Value(txKey{}).(*txScope); ok {
		return scope.tx
	}
	return nil
}

// AfterCommit defers fn until the request transaction commits; fn is dropped on rollback.
// Without a transaction in ctx, fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	if scope, ok := ctx.Value(txKey{}).(*txScope); ok {
		scope.onCommit = append(scope.onCommit, fn)
		return
	}
	fn()
}
