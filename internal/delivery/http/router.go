package http

import (
	"net/http"

	"mediconnect/internal/delivery/http/handler"
	"mediconnect/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	router              *mux.Router
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	availabilityHandler *handler.AvailabilityHandler
	bookingHandler      *handler.BookingHandler
	searchHandler       *handler.SearchHandler
	auditLogHandler     *handler.AuditLogHandler
	corsMiddleware      *middleware.CORSMiddleware
	metricsMiddleware   *middleware.MetricsMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	availabilityHandler *handler.AvailabilityHandler,
	bookingHandler *handler.BookingHandler,
	searchHandler *handler.SearchHandler,
	auditLogHandler *handler.AuditLogHandler,
	corsMiddleware *middleware.CORSMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		availabilityHandler: availabilityHandler,
		bookingHandler:      bookingHandler,
		searchHandler:       searchHandler,
		auditLogHandler:     auditLogHandler,
		corsMiddleware:      corsMiddleware,
		metricsMiddleware:   metricsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check and metrics
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Registration (public)
	api.HandleFunc("/register/patient", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/register/doctor", r.doctorHandler.RegisterDoctor).Methods(http.MethodPost)

	// Availability
	api.HandleFunc("/availability", r.availabilityHandler.CreateSlot).Methods(http.MethodPost)
	api.HandleFunc("/availability/doctor/{doctorId}", r.availabilityHandler.GetDoctorSlots).Methods(http.MethodGet)
	api.HandleFunc("/availability/{id}", r.availabilityHandler.DeleteSlot).Methods(http.MethodDelete)

	// Booking
	api.HandleFunc("/book-appointment", r.bookingHandler.BookAppointment).Methods(http.MethodPost)
	api.HandleFunc("/doctor/appointments", r.bookingHandler.GetDoctorAppointments).Methods(http.MethodGet)
	api.HandleFunc("/doctor/appointment/{id}", r.bookingHandler.UpdateAppointmentStatus).Methods(http.MethodPatch)

	// Doctor self-service
	api.HandleFunc("/doctor/profile", r.doctorHandler.UpdateProfile).Methods(http.MethodPatch)
	api.HandleFunc("/doctor/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Search
	api.HandleFunc("/search", r.searchHandler.SearchBySymptoms).Methods(http.MethodPost)
	api.HandleFunc("/search-specialization", r.searchHandler.SearchBySpecialization).Methods(http.MethodPost)

	// Admin
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/verify-doctor", r.doctorHandler.VerifyDoctor).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/verified", r.doctorHandler.GetVerifiedDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/pending", r.doctorHandler.GetPendingDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)
	admin.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	admin.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetRecentAuditLogs).Methods(http.MethodGet)

	// Global middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
