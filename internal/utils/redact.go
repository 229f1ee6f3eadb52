package utils

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
)

// removedHeaders never appear in request logs
var removedHeaders = map[string]bool{
	strings.ToLower(constants.HeaderCookie):    true,
	strings.ToLower(constants.HeaderSetCookie): true,
}

// sensitiveHeaderParts mark headers whose values are masked
var sensitiveHeaderParts = []string{strings.ToLower(constants.HeaderAuthorization), "token", "secret", "api-key", "apikey"}

// IsSensitiveHeader reports whether the value of the named header is masked in logs
func IsSensitiveHeader(name string) bool {
	lower := strings.ToLower(name)
	for _, part := range sensitiveHeaderParts {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}

// HeaderLog renders request headers for logging: names lowercased and
// sorted, cookies removed and credentials masked.
func HeaderLog(h http.Header) string {
	names := make([]string, 0, len(h))
	for name := range h {
		if removedHeaders[strings.ToLower(name)] {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	parts := make([]string, 0, len(names))
	for _, name := range names {
		value := strings.Join(h[name], ",")
		if IsSensitiveHeader(name) {
			value = constants.LogMaskedValue
		}
		parts = append(parts, fmt.Sprintf("%s:%q", strings.ToLower(name), value))
	}
	return strings.Join(parts, " ")
}
