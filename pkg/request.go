package pkg

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// IntPathVar reads a numeric mux path variable, writing a 400 when it is missing or invalid.
func IntPathVar(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	idStr := mux.Vars(r)[name]
	if idStr == "" {
		http.Error(w, "error, "+name+" empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, "+name+" NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// DecodeJSONRequest decodes the json body into v, writing a 400 on failure.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Header.Get("Content-Type") != ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debugf("unmarshal json params: %s", err)
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return false
	}
	return true
}
