/*
Package req provides helper functions for HTTP request parsing and data binding.

It encapsulates JSON body decoding with strictness checks (unknown fields,
trailing content) so handlers receive typed input or a uniform binding error.
*/
package req

import (
	"encoding/json"
	"net/http"
	"strings"

	"salachat/internal/pkg/errs"
)

// BindJSON binds the JSON request body to the destination struct dst.
// It requires an application/json Content-Type, rejects unknown fields, and
// rejects trailing content after the JSON document.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}
