package entity

// DoctorFilter is a domain-level filter for querying verified doctors.
// Used by repository layer to avoid coupling with delivery DTOs.
// All provided fields match exactly; empty fields are skipped.
type DoctorFilter struct {
	Specializations []string // Match any of the listed specializations
	Location        string   // Exact-match city label
}
