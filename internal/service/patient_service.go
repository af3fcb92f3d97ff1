package service

import (
	"context"

	"hospital_records/internal/models"
	"hospital_records/internal/repository"
)

type PatientService struct {
	repo repository.PatientRepo
}

func NewPatientService(repo repository.PatientRepo) *PatientService {
	return &PatientService{repo: repo}
}

func (s *PatientService) CreatePatient(ctx context.Context, p models.Patient) error {
	if err := requireField("name", p.Name); err != nil {
		return err
	}
	if err := requireField("disease", p.Disease); err != nil {
		return err
	}
	return s.repo.Create(ctx, p)
}

func (s *PatientService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return s.repo.List(ctx)
}

func (s *PatientService) GetPatient(ctx context.Context, id int) (models.Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PatientService) UpdatePatient(ctx context.Context, id int, p models.PatientPatch) error {
	if p.Empty() {
		_, err := s.repo.GetByID(ctx, id)
		return err
	}
	return s.repo.Update(ctx, id, p)
}

func (s *PatientService) DeletePatient(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
