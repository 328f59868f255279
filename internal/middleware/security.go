// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// secureHeaders is the fixed header set applied to every response. The
// page cache stores body bytes only, so cached hits get these too.
var secureHeaders = map[string]string{
	// No MIME sniffing; responses declare their own Content-Type.
	"X-Content-Type-Options": "nosniff",
	// The site never needs to be framed cross-origin.
	"X-Frame-Options": "SAMEORIGIN",
	// The legacy XSS filter is off; it causes more harm than good.
	"X-XSS-Protection": "0",
	"Referrer-Policy":  "strict-origin-when-cross-origin",
	// Opt out of FLoC cohort calculations.
	"Permissions-Policy": "interest-cohort=()",
}

// SecureHeaders applies the standard security headers to every response.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for name, value := range secureHeaders {
			h.Set(name, value)
		}
		next.ServeHTTP(w, r)
	})
}
