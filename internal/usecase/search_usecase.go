package usecase

import (
	"context"
	"time"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/domain/entity"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SearchUsecase interface {
	SearchBySymptoms(ctx context.Context, req *dto.SymptomSearchRequest) (*dto.SymptomSearchResponse, error)
	SearchBySpecialization(ctx context.Context, req *dto.SpecializationSearchRequest) (*dto.SpecializationSearchResponse, error)
}

type searchUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	doctorRepo       repository.DoctorRepository
	predictor        service.Predictor
	predictionCache  *service.PredictionCache
	predictorTimeout time.Duration
}

func NewSearchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	predictor service.Predictor,
	predictionCache *service.PredictionCache,
	predictorTimeout time.Duration,
) SearchUsecase {
	return &searchUsecase{
		db:               db,
		log:              log,
		doctorRepo:       doctorRepo,
		predictor:        predictor,
		predictionCache:  predictionCache,
		predictorTimeout: predictorTimeout,
	}
}

// SearchBySymptoms turns a symptom set into a specialization-filtered list of
// verified doctors. The predictor call is the only network hop in the core;
// it is bounded by a timeout and its failure surfaces as an upstream error,
// never as a silent fallback to an unfiltered doctor list.
func (u *searchUsecase) SearchBySymptoms(ctx context.Context, req *dto.SymptomSearchRequest) (*dto.SymptomSearchResponse, error) {
	prediction, cached := u.predictionCache.Get(ctx, req.Symptoms)
	if !cached {
		predictCtx, cancel := context.WithTimeout(ctx, u.predictorTimeout)
		defer cancel()

		var err error
		prediction, err = u.predictor.Predict(predictCtx, req.Symptoms)
		if err != nil {
			u.log.Warnf("Symptom prediction failed: %+v", err)
			return nil, err
		}

		u.predictionCache.Set(ctx, req.Symptoms, prediction)
	}

	doctors, err := u.doctorRepo.FindVerified(u.db.WithContext(ctx), &entity.DoctorFilter{
		Specializations: prediction.Specializations,
		Location:        req.Location,
	})
	if err != nil {
		u.log.Warnf("Failed to find doctors for prediction %q: %+v", prediction.Disease, err)
		return nil, err
	}

	return &dto.SymptomSearchResponse{
		PredictedDisease:           prediction.Disease,
		Confidence:                 prediction.Confidence,
		RecommendedSpecializations: prediction.Specializations,
		Doctors:                    converter.DoctorsToResponses(doctors),
	}, nil
}

// SearchBySpecialization is the direct search path: verified doctors matching
// the exact specialization and location.
func (u *searchUsecase) SearchBySpecialization(ctx context.Context, req *dto.SpecializationSearchRequest) (*dto.SpecializationSearchResponse, error) {
	doctors, err := u.doctorRepo.FindVerified(u.db.WithContext(ctx), &entity.DoctorFilter{
		Specializations: []string{req.Specialization},
		Location:        req.Location,
	})
	if err != nil {
		u.log.Warnf("Failed to find doctors by specialization: %+v", err)
		return nil, err
	}

	return &dto.SpecializationSearchResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}
