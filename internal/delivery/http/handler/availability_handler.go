package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *AvailabilityHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.availabilityUsecase.CreateSlot(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidSlotDate:
			response.Error(w, http.StatusBadRequest, "Invalid slot date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		case usecase.ErrSlotWindowInverted:
			response.Error(w, http.StatusBadRequest, "Slot start time must precede end time", nil)
		default:
			response.InternalServerError(w, "Failed to create slot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Slot created successfully", slot)
}

func (h *AvailabilityHandler) GetDoctorSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["doctorId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	slots, err := h.availabilityUsecase.GetDoctorSlots(r.Context(), doctorID, r.URL.Query().Get("date"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidSlotDate:
			response.Error(w, http.StatusBadRequest, "Invalid slot date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *AvailabilityHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return
	}

	if err := h.availabilityUsecase.DeleteSlot(r.Context(), slotID); err != nil {
		response.InternalServerError(w, "Failed to delete slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot deleted successfully", nil)
}
