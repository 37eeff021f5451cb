package middleware

import (
	"net/http"
	"sync/atomic"
)

// Maintenance gates the API behind a runtime-toggleable flag. The
// initial state comes from configuration; an admin endpoint can flip it
// without a restart.
type Maintenance struct {
	enabled atomic.Bool
}

func NewMaintenance(enabled bool) *Maintenance {
	m := &Maintenance{}
	m.enabled.Store(enabled)
	return m
}

func (m *Maintenance) Enabled() bool {
	return m.enabled.Load()
}

func (m *Maintenance) SetEnabled(enabled bool) {
	m.enabled.Store(enabled)
}

func (m *Maintenance) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.enabled.Load() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"code":503,"message":"Service temporarily unavailable. Please try again later."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
