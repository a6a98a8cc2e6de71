package entity

// Prediction is the diagnosis returned by the external symptom predictor:
// a predicted disease, the specializations able to treat it, and the model's
// confidence for this specific prediction (percentage).
type Prediction struct {
	Disease         string   `json:"predicted_disease"`
	Specializations []string `json:"doctor_specializations"`
	Confidence      float64  `json:"confidence"`
}
