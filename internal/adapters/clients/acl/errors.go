// Package acl is the anti-corruption layer in front of the identity
// service. Wire formats live in acl/identity; this package owns the calls
// and the mapping of identity failures onto domain errors.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

const maxProblemBody = 64 << 10

// problem is the subset of an RFC 7807 body the identity service sends.
type problem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError maps an identity service failure to a domain error.
// A rejected credential on this hop is a deployment fault, not the caller's,
// so 401 and 403 surface as ErrUnavailable like any 5xx.
func TranslateHTTPError(resp *http.Response) error {
	pd := readProblem(resp)
	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case code == http.StatusConflict:
		sentinel = domain.ErrConflict
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			fields := make(map[string]string, len(pd.Errors))
			for _, e := range pd.Errors {
				fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
			}
			return &domain.ValidationError{Fields: fields}
		}
		sentinel = domain.ErrValidation
	case code == http.StatusUnauthorized || code == http.StatusForbidden || code >= http.StatusInternalServerError:
		sentinel = domain.ErrUnavailable
	default:
		return fmt.Errorf("identity service: unexpected status %d: %s", code, detail)
	}
	return fmt.Errorf("identity service: %s: %w", detail, sentinel)
}

func readProblem(resp *http.Response) problem {
	var pd problem
	if resp.Body == nil {
		return pd
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != "application/problem+json" {
		return pd
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProblemBody))
	if err != nil || json.Unmarshal(body, &pd) != nil {
		return problem{}
	}
	return pd
}
