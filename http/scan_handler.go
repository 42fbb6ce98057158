package http

import (
	"encoding/json"
	"net/http"

	"tvm-service/domain"
	"tvm-service/service"
)

type ScanHandler struct {
	service *service.ScanService
}

func NewScanHandler(service *service.ScanService) *ScanHandler {
	return &ScanHandler{service: service}
}

func (h *ScanHandler) ScanRoots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.ScanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.ScanRoots(input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result)
}
