package kit

import "net/http"

// HTTPSRedirect sends plain-HTTP requests to the https scheme with a
// permanent redirect. A terminating proxy is honored through
// X-Forwarded-Proto, so the middleware also works behind a load
// balancer that strips TLS.
func HTTPSRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
			next.ServeHTTP(w, r)
			return
		}

		u := *r.URL
		u.Scheme = "https"
		u.Host = r.Host
		http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
	})
}
