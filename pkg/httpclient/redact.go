package httpclient

import (
	"net/url"
	"strings"
)

var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"x-api-key":           true,
	"api-key":             true,
	"x-auth-token":        true,
	"cookie":              true,
	"proxy-authorization": true,
}

var sensitiveParams = map[string]bool{
	"token":        true,
	"access_token": true,
	"api_key":      true,
	"apikey":       true,
	"key":          true,
	"password":     true,
	"secret":       true,
}

// RedactSecret masks s, showing only its first and last 4
// characters.
func RedactSecret(s string) string {
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-8) + s[len(s)-4:]
}

// RedactURL masks the password and credential-like query
// parameters of rawURL. Unparseable input is returned unchanged.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if u.User != nil {
		if password, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), RedactSecret(password))
		}
	}

	if u.RawQuery != "" {
		q := u.Query()
		changed := false
		for k, values := range q {
			if !sensitiveParams[strings.ToLower(k)] {
				continue
			}
			for i, v := range values {
				values[i] = RedactSecret(v)
			}
			changed = true
		}
		if changed {
			u.RawQuery = q.Encode()
		}
	}
	return u.String()
}

// RedactHeaders returns a copy of headers with credential values
// masked.
func RedactHeaders(headers map[string]string) map[string]string {
	result := make(map[string]string, len(headers))
	for k, v := range headers {
		if sensitiveHeaders[strings.ToLower(k)] {
			result[k] = RedactSecret(v)
		} else {
			result[k] = v
		}
	}
	return result
}
