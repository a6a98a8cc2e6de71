package dto

// Request DTOs

type SymptomSearchRequest struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
	Location string   `json:"location" validate:"required"`
}

type SpecializationSearchRequest struct {
	Specialization string `json:"specialization" validate:"required"`
	Location       string `json:"location" validate:"required"`
}

// Response DTOs

type SymptomSearchResponse struct {
	PredictedDisease           string           `json:"predicted_disease"`
	Confidence                 float64          `json:"confidence"`
	RecommendedSpecializations []string         `json:"recommended_specializations"`
	Doctors                    []DoctorResponse `json:"doctors"`
}

type SpecializationSearchResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
