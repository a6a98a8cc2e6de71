package converter

import (
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
)

// SlotToResponse converts an AvailabilitySlot entity to SlotResponse DTO
func SlotToResponse(slot *entity.AvailabilitySlot) *dto.SlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.SlotResponse{
		ID:        slot.ID,
		DoctorID:  slot.DoctorID,
		Date:      slot.SlotDate.Format("2006-01-02"),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		CreatedAt: slot.CreatedAt,
	}
}

// SlotsToResponses converts a slice of AvailabilitySlot entities to slice of SlotResponse DTOs
func SlotsToResponses(slots []entity.AvailabilitySlot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		resp := SlotToResponse(&slot)
		responses[i] = *resp
	}
	return responses
}
