package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/acd-annotator/acd-annotator-go/internal/constants"
	"github.com/acd-annotator/acd-annotator-go/pkg/container"
)

// HasJSONContentType reports whether the request declares a JSON body
func HasJSONContentType(r *http.Request) bool {
	return strings.Contains(strings.ToLower(r.Header.Get(constants.HeaderContentType)), constants.ContentTypeJSON)
}

// DecodeJSONObject reads the request body as a single JSON object in the
// raw form accepted by container.Validator.Parse. A JSON null body yields a
// nil map.
func DecodeJSONObject(r *http.Request) (map[string]any, error) {
	// Limit the size of the request body to prevent DOS attacks
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxRequestBodySize)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, New(ErrBadRequest, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		}
		return nil, NewWithDevInfo(ErrBadRequest, http.StatusBadRequest, constants.MsgMalformedJSON, err.Error())
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, NewBadRequestError("Request body is empty")
	}

	raw, err := container.DecodeRaw(data)
	if err != nil {
		// The decoder error is kept out of the response: it may quote the body
		return nil, NewWithDevInfo(ErrBadRequest, http.StatusBadRequest, constants.MsgMalformedJSON, err.Error())
	}
	return raw, nil
}
