package service

import (
	"context"
	"fmt"
	"strings"

	"hospital_records/internal/models"
	"hospital_records/internal/repository"
)

type DoctorService struct {
	repo repository.DoctorRepo
}

func NewDoctorService(repo repository.DoctorRepo) *DoctorService {
	return &DoctorService{repo: repo}
}

// CreateDoctor rejects blank name/specialty, then stores the record.
// A taken id surfaces as repository.ErrConflict.
func (s *DoctorService) CreateDoctor(ctx context.Context, d models.Doctor) error {
	if err := requireField("name", d.Name); err != nil {
		return err
	}
	if err := requireField("specialty", d.Specialty); err != nil {
		return err
	}
	return s.repo.Create(ctx, d)
}

func (s *DoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.repo.List(ctx)
}

func (s *DoctorService) GetDoctor(ctx context.Context, id int) (models.Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateDoctor applies whatever subset of fields arrives, including none.
func (s *DoctorService) UpdateDoctor(ctx context.Context, id int, p models.DoctorPatch) error {
	if p.Empty() {
		_, err := s.repo.GetByID(ctx, id)
		return err
	}
	return s.repo.Update(ctx, id, p)
}

func (s *DoctorService) DeleteDoctor(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// requireField treats whitespace-only values as missing.
func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidRecord, field)
	}
	return nil
}
