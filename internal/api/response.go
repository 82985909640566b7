package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skylogger/dronelog/internal/common"
	"skylogger/dronelog/internal/models/dtos"
	"skylogger/dronelog/internal/services"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := dtos.TypedAPIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// respondDomainError maps service errors onto the envelope: user-correctable
// DomainErrors become 422s carrying the rule's message, everything else is a
// 500 with a generic message.
func respondDomainError(w http.ResponseWriter, initTime time.Time, err error) {
	var domainErr *services.DomainError
	if errors.As(err, &domainErr) {
		common.RespondError(w, initTime, domainErr, domainErr.Message, http.StatusUnprocessableEntity)
		return
	}
	common.RespondError(w, initTime, nil, "An unexpected error occurred", http.StatusInternalServerError)
}
