package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/service"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/validator"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
	validator     *validator.CustomValidator
}

func NewSearchHandler(searchUsecase usecase.SearchUsecase, validator *validator.CustomValidator) *SearchHandler {
	return &SearchHandler{
		searchUsecase: searchUsecase,
		validator:     validator,
	}
}

func (h *SearchHandler) SearchBySymptoms(w http.ResponseWriter, r *http.Request) {
	var req dto.SymptomSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.searchUsecase.SearchBySymptoms(r.Context(), &req)
	if err != nil {
		// Predictor errors arrive wrapped with cause detail
		if errors.Is(err, service.ErrPredictorUnavailable) {
			response.BadGateway(w, "Diagnosis predictor unavailable")
			return
		}
		response.InternalServerError(w, "Failed to search doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", result)
}

func (h *SearchHandler) SearchBySpecialization(w http.ResponseWriter, r *http.Request) {
	var req dto.SpecializationSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.searchUsecase.SearchBySpecialization(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to search doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", result)
}
