package handler

import (
	"net/http"

	"github.com/unrolled/secure"
)

var secureHeaders = secure.New(secure.Options{
	FrameDeny:             true,
	ContentTypeNosniff:    true,
	ReferrerPolicy:        "no-referrer",
	ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
})

// SecurityHeaders adds the response headers every JSON endpoint carries.
func SecurityHeaders(next http.Handler) http.Handler {
	return secureHeaders.Handler(next)
}
