package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three base64url segments of ten or more characters, so version
	// strings like 1.2.3 survive.
	jwtValue = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	// A password embedded in a connection URL, e.g. postgres://app:pw@db/app.
	urlPassword = regexp.MustCompile(`://[^:/@\s]+:[^@\s]+@`)
)

// redactor masks the request credentials, the configured secrets (JWT
// signing key, database DSN and object store keys) and raw bearer or
// JWT values wherever they appear.
func redactor() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("authorization"),
		masq.WithFieldName("cookie"),
		masq.WithFieldName("x-api-key"),
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("jwt_secret"),
		masq.WithFieldName("dsn"),
		masq.WithFieldName("access_key_id"),
		masq.WithFieldName("secret_access_key"),
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerValue),
		masq.WithRegex(jwtValue),
		masq.WithRegex(urlPassword),
	)
}
