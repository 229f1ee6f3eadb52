package utils_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acd-annotator/acd-annotator-go/internal/utils"
)

func TestHeaderLog(t *testing.T) {
	tests := []struct {
		name   string
		header http.Header
		want   string
	}{
		{
			name:   "empty",
			header: http.Header{},
			want:   "",
		},
		{
			name: "cookies removed and credentials masked",
			header: http.Header{
				"Content-Type":     {"application/json"},
				"Cookie":           {"session=secret"},
				"Authorization":    {"Bearer abc"},
				"X-Correlation-Id": {"cid"},
				"X-Api-Key":        {"k"},
			},
			want: `authorization:"*****" content-type:"application/json" x-api-key:"*****" x-correlation-id:"cid"`,
		},
		{
			name: "set-cookie removed",
			header: http.Header{
				"Set-Cookie": {"session=secret"},
				"Accept":     {"*/*"},
			},
			want: `accept:"*/*"`,
		},
		{
			name:   "repeated values joined",
			header: http.Header{"Accept": {"application/json", "text/plain"}},
			want:   `accept:"application/json,text/plain"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.HeaderLog(tt.header))
		})
	}
}

func TestIsSensitiveHeader(t *testing.T) {
	assert.True(t, utils.IsSensitiveHeader("authorization"))
	assert.True(t, utils.IsSensitiveHeader("X-Auth-Token"))
	assert.True(t, utils.IsSensitiveHeader("X-Client-Secret"))
	assert.False(t, utils.IsSensitiveHeader("Content-Length"))
}
