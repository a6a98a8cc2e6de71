package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/service"

	"gorm.io/gorm"
)

// missCache never hits; a nil redis client makes every read a miss and every
// write a no-op.
func missCache() *service.PredictionCache {
	return service.NewPredictionCache(nil, time.Minute, newTestLogger())
}

func TestSearchBySymptoms(t *testing.T) {
	t.Run("should filter verified doctors by the predicted specializations", func(t *testing.T) {
		db, _ := newTestDB(t)

		predictor := &mockPredictor{
			mockPredict: func(ctx context.Context, symptoms []string) (*entity.Prediction, error) {
				if _, ok := ctx.Deadline(); !ok {
					t.Error("expected the predictor call to carry a deadline")
				}
				return &entity.Prediction{
					Disease:         "Hypertension",
					Specializations: []string{"Cardiologist", "General Physician"},
					Confidence:      91.4,
				}, nil
			},
		}

		var gotFilter *entity.DoctorFilter
		doctorRepo := &mockDoctorRepository{
			mockFindVerified: func(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
				gotFilter = filter
				return []entity.Doctor{
					{Username: "drhouse", Specialization: "Cardiologist", Location: "Jakarta", Status: entity.VerificationStatusVerified},
				}, nil
			},
		}

		u := NewSearchUsecase(db, newTestLogger(), doctorRepo, predictor, missCache(), time.Second)

		got, err := u.SearchBySymptoms(context.Background(), &dto.SymptomSearchRequest{
			Symptoms: []string{"headache", "dizziness"},
			Location: "Jakarta",
		})
		if err != nil {
			t.Fatalf("SearchBySymptoms() error = %v", err)
		}
		if got.PredictedDisease != "Hypertension" {
			t.Errorf("PredictedDisease = %q, want Hypertension", got.PredictedDisease)
		}
		if got.Confidence != 91.4 {
			t.Errorf("Confidence = %v, want 91.4", got.Confidence)
		}
		if len(got.Doctors) != 1 {
			t.Fatalf("Doctors = %d, want 1", len(got.Doctors))
		}
		if gotFilter == nil || len(gotFilter.Specializations) != 2 || gotFilter.Location != "Jakarta" {
			t.Errorf("doctor filter = %+v, want both specializations and the location", gotFilter)
		}
	})

	t.Run("should surface a predictor failure instead of an unfiltered list", func(t *testing.T) {
		db, _ := newTestDB(t)

		predictor := &mockPredictor{
			mockPredict: func(ctx context.Context, symptoms []string) (*entity.Prediction, error) {
				return nil, service.ErrPredictorUnavailable
			},
		}
		doctorRepo := &mockDoctorRepository{
			mockFindVerified: func(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
				t.Error("doctor lookup must not run when the prediction failed")
				return nil, nil
			},
		}

		u := NewSearchUsecase(db, newTestLogger(), doctorRepo, predictor, missCache(), time.Second)

		_, err := u.SearchBySymptoms(context.Background(), &dto.SymptomSearchRequest{
			Symptoms: []string{"headache"},
			Location: "Jakarta",
		})
		if !errors.Is(err, service.ErrPredictorUnavailable) {
			t.Fatalf("error = %v, want %v", err, service.ErrPredictorUnavailable)
		}
	})
}

func TestSearchBySpecialization(t *testing.T) {
	db, _ := newTestDB(t)

	var gotFilter *entity.DoctorFilter
	doctorRepo := &mockDoctorRepository{
		mockFindVerified: func(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
			gotFilter = filter
			return []entity.Doctor{
				{Username: "drgrey", Specialization: "Dermatologist", Location: "Bandung", Status: entity.VerificationStatusVerified},
			}, nil
		},
	}

	u := NewSearchUsecase(db, newTestLogger(), doctorRepo, &mockPredictor{}, missCache(), time.Second)

	got, err := u.SearchBySpecialization(context.Background(), &dto.SpecializationSearchRequest{
		Specialization: "Dermatologist",
		Location:       "Bandung",
	})
	if err != nil {
		t.Fatalf("SearchBySpecialization() error = %v", err)
	}
	if got.Total != 1 {
		t.Errorf("Total = %d, want 1", got.Total)
	}
	if gotFilter == nil || len(gotFilter.Specializations) != 1 || gotFilter.Specializations[0] != "Dermatologist" {
		t.Errorf("doctor filter = %+v, want the exact specialization", gotFilter)
	}
}
