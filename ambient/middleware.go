package ambient

import "net/http"

// TxIDHeader is read from requests and echoed on responses.
const TxIDHeader = "X-Transaction-Id"

// Middleware binds a transaction id to every request context. An incoming
// X-Transaction-Id header is reused; otherwise a new id is generated.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(TxIDHeader)
		if id == "" {
			id = NewTxID()
		}
		w.Header().Set(TxIDHeader, id)
		next.ServeHTTP(w, r.WithContext(WithTxID(r.Context(), id)))
	})
}
