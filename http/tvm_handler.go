package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tvm-service/annuity"
	"tvm-service/domain"
	"tvm-service/service"
)

type TVMHandler struct {
	service *service.TVMService
}

func NewTVMHandler(service *service.TVMService) *TVMHandler {
	return &TVMHandler{service: service}
}

func (h *TVMHandler) Rate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.RateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Rate(input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result)
}

func (h *TVMHandler) InterestPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.InterestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.InterestPayment(input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result)
}

func (h *TVMHandler) StraightLineInterest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.StraightLineInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.StraightLineInterest(input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, result)
}

func (h *TVMHandler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	records, err := h.service.History(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, records)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeError maps the single numeric domain error (#NUM!) to 422 with a
// structured payload; anything else is a malformed request.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, annuity.ErrNum) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "#NUM!",
			"cause": err.Error(),
		})
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}
