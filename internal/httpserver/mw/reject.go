package mw

import (
	"net/http"
	"strconv"
)

// reject writes a fail envelope matching the API's response shape.
func reject(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"status":"fail","message":` + strconv.Quote(http.StatusText(status)) + `}`))
}
