package service

import (
	"context"
	"errors"

	"hospital_records/internal/models"
	"hospital_records/internal/repository"
)

// ErrInvalidRecord is returned when a create payload is missing a required field.
var ErrInvalidRecord = errors.New("invalid record")

type Authorization interface {
	EnsureSeedUser(ctx context.Context, username, password string) (bool, error)
	Login(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Doctors exposes CRUD over doctor records.
type Doctors interface {
	CreateDoctor(ctx context.Context, d models.Doctor) error
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	GetDoctor(ctx context.Context, id int) (models.Doctor, error)
	UpdateDoctor(ctx context.Context, id int, p models.DoctorPatch) error
	DeleteDoctor(ctx context.Context, id int) error
}

// Patients exposes CRUD over patient records.
type Patients interface {
	CreatePatient(ctx context.Context, p models.Patient) error
	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, id int) (models.Patient, error)
	UpdatePatient(ctx context.Context, id int, p models.PatientPatch) error
	DeletePatient(ctx context.Context, id int) error
}

// Summary exposes read-only record counts for the dashboard.
type Summary interface {
	GetSummary(ctx context.Context) (models.Summary, error)
}

// Service aggregates all sub-services handed to the HTTP layer.
type Service struct {
	Doctors
	Patients
	Summary
	Authorization
}

func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Doctors:       NewDoctorService(repos.Doctors),
		Patients:      NewPatientService(repos.Patients),
		Summary:       NewSummaryService(repos.Doctors, repos.Patients),
		Authorization: NewAuthService(repos.Auth, auth),
	}
}
