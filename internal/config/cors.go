package config

import (
	"os"
	"strings"
)

// DefaultCORSOrigins covers the local Vite/React dev servers the dashboard
// runs on.
var DefaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
}

// CORSOrigins returns the allowed browser origins from CORS_ORIGINS
// (comma-separated). When unset it falls back to the local dev origins.
func CORSOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return DefaultCORSOrigins
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return DefaultCORSOrigins
	}
	return origins
}
