package main

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	importer ImportRunner
}

func NewHandler(
	importer ImportRunner,
) *Handler {
	return &Handler{
		importer: importer,
	}
}

func (h *Handler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	if apiKey != r.URL.Query().Get("api_key") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	ctx := log.Logger.WithContext(r.Context())

	w.Header().Set("Content-Type", "application/json")

	if err := h.importer.Run(ctx); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(RunResponse{
			Status: "Failed",
			Error:  err.Error(),
		})

		return
	}

	_ = json.NewEncoder(w).Encode(RunResponse{
		Status:  "Success",
		Message: "Successfully ran TransferWise import.",
	})
}
