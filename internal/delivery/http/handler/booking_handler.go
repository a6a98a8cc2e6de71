package handler

import (
	"encoding/json"
	"net/http"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/response"
	"mediconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.BookAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDoctorNotVerified:
			response.Forbidden(w, "Doctor is not verified")
		case usecase.ErrTimeOutsideSlots:
			response.Error(w, http.StatusBadRequest, "Requested time is outside the doctor's availability", nil)
		case usecase.ErrInvalidSlotDate:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		case usecase.ErrSlotTaken:
			response.Conflict(w, "Time slot already booked")
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *BookingHandler) GetDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(r.URL.Query().Get("doctorId"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Doctor ID is required", nil)
		return
	}

	appointments, err := h.bookingUsecase.GetDoctorAppointments(r.Context(), doctorID, r.URL.Query().Get("type"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidViewType:
			response.Error(w, http.StatusBadRequest, "View type must be upcoming or history", nil)
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *BookingHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.UpdateAppointmentStatus(r.Context(), appointmentID, req.Status)
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Status must be completed or cancelled", nil)
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentFinalized:
			response.Conflict(w, "Appointment already reached a final status")
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment "+req.Status, appointment)
}
