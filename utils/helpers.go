package utils

import (
	"encoding/json"
	"net/http"

	"github.com/vcare/contactmail/constants"
)

// WriteHTTPJSON writes v as a JSON response with the given status code.
func WriteHTTPJSON(w http.ResponseWriter, code int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, constants.ResponseInternalServerError, http.StatusInternalServerError)
		return err
	}
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(code)
	_, err = w.Write(data)
	return err
}
