package service

import (
	"context"
	"fmt"

	"hospital_records/internal/models"
	"hospital_records/internal/repository"
)

type SummaryService struct {
	doctors  repository.DoctorRepo
	patients repository.PatientRepo
}

func NewSummaryService(doctors repository.DoctorRepo, patients repository.PatientRepo) *SummaryService {
	return &SummaryService{doctors: doctors, patients: patients}
}

// GetSummary counts both tables. The two counts are not read atomically.
func (s *SummaryService) GetSummary(ctx context.Context) (models.Summary, error) {
	d, err := s.doctors.Count(ctx)
	if err != nil {
		return models.Summary{}, fmt.Errorf("count doctors: %w", err)
	}
	p, err := s.patients.Count(ctx)
	if err != nil {
		return models.Summary{}, fmt.Errorf("count patients: %w", err)
	}
	return models.Summary{Doctors: d, Patients: p}, nil
}
