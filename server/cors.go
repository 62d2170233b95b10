package server

import (
	"net/http"
	"strings"
)

// cors answers preflight requests and stamps CORS headers for allowed origins.
// Requests from other origins pass through without CORS headers.
type cors struct {
	any     bool
	origins map[string]struct{}
}

func newCORS(allowed []string) *cors {
	c := &cors{origins: make(map[string]struct{}, len(allowed))}
	for _, o := range allowed {
		o = strings.TrimSpace(o)
		if o == "*" {
			c.any = true
		}
		c.origins[o] = struct{}{}
	}

	return c
}

func (c *cors) allowed(origin string) bool {
	if origin == "" {
		return false
	}
	if c.any {
		return true
	}
	_, ok := c.origins[origin]

	return ok
}

func (c *cors) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		w.Header().Add("Vary", "Origin")
		if c.allowed(origin) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			if req := r.Header.Get("Access-Control-Request-Headers"); req != "" {
				h.Set("Access-Control-Allow-Headers", req)
			} else {
				h.Set("Access-Control-Allow-Headers", "Content-Type")
			}
		}

		// preflight
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
