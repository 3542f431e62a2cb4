package httpx

import (
	"encoding/json"
	"net/http"

	"grubdash/internal/pipeline"
)

type dataResponse struct {
	Data any `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, code int, v any) {
	writeJSON(w, code, dataResponse{Data: v})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

func writePipelineError(w http.ResponseWriter, err *pipeline.Error) {
	writeError(w, err.Status, err.Message)
}

// decodeBody parses the {data: {...}} envelope. A false return means
// the 400 has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request) (pipeline.Payload, bool) {
	body, err := pipeline.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return pipeline.Payload{}, false
	}
	return body, true
}
