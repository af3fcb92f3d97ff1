package repository

import (
	"context"
	"database/sql"
	"errors"

	"hospital_records/internal/models"
)

// Store-level outcomes callers are expected to match with errors.Is.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type DoctorRepo interface {
	Create(ctx context.Context, d models.Doctor) error
	List(ctx context.Context) ([]models.Doctor, error)
	GetByID(ctx context.Context, id int) (models.Doctor, error)
	Update(ctx context.Context, id int, p models.DoctorPatch) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type PatientRepo interface {
	Create(ctx context.Context, p models.Patient) error
	List(ctx context.Context) ([]models.Patient, error)
	GetByID(ctx context.Context, id int) (models.Patient, error)
	Update(ctx context.Context, id int, p models.PatientPatch) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type Repository struct {
	Doctors  DoctorRepo
	Patients PatientRepo
	Auth     Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Doctors:  NewDoctorSQLite(db),
		Patients: NewPatientSQLite(db),
		Auth:     NewUserRepository(db),
	}
}
