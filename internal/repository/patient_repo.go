package repository

import (
	"context"
	"database/sql"

	"hospital_records/internal/models"
)

type PatientSQLite struct {
	db *sql.DB
}

func NewPatientSQLite(db *sql.DB) *PatientSQLite {
	return &PatientSQLite{db: db}
}

var _ PatientRepo = (*PatientSQLite)(nil)

const (
	insertPatientSQL     = `INSERT INTO patients (id, name, disease) VALUES (?, ?, ?) ON CONFLICT(id) DO NOTHING`
	selectPatientsSQL    = `SELECT id, name, disease FROM patients ORDER BY id`
	selectPatientByIDSQL = `SELECT id, name, disease FROM patients WHERE id = ?`
	updatePatientSQL     = `UPDATE patients SET name = COALESCE(?, name), disease = COALESCE(?, disease) WHERE id = ?`
	deletePatientSQL     = `DELETE FROM patients WHERE id = ?`
	countPatientsSQL     = `SELECT COUNT(*) FROM patients`
)

var patientQueries = recordQueries{
	entity:    "patient",
	insert:    insertPatientSQL,
	selectAll: selectPatientsSQL,
	selectOne: selectPatientByIDSQL,
	update:    updatePatientSQL,
	remove:    deletePatientSQL,
	count:     countPatientsSQL,
}

func (r *PatientSQLite) Create(ctx context.Context, p models.Patient) error {
	return insertRecord(ctx, r.db, patientQueries, recordRow{id: p.ID, name: p.Name, detail: p.Disease})
}

func (r *PatientSQLite) List(ctx context.Context) ([]models.Patient, error) {
	rows, err := listRecords(ctx, r.db, patientQueries)
	if err != nil {
		return nil, err
	}
	out := make([]models.Patient, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Patient{ID: row.id, Name: row.name, Disease: row.detail})
	}
	return out, nil
}

func (r *PatientSQLite) GetByID(ctx context.Context, id int) (models.Patient, error) {
	row, err := getRecord(ctx, r.db, patientQueries, id)
	if err != nil {
		return models.Patient{}, err
	}
	return models.Patient{ID: row.id, Name: row.name, Disease: row.detail}, nil
}

func (r *PatientSQLite) Update(ctx context.Context, id int, p models.PatientPatch) error {
	return updateRecord(ctx, r.db, patientQueries, id, p.Name, p.Disease)
}

func (r *PatientSQLite) Delete(ctx context.Context, id int) error {
	return deleteRecord(ctx, r.db, patientQueries, id)
}

func (r *PatientSQLite) Count(ctx context.Context) (int, error) {
	return countRecords(ctx, r.db, patientQueries)
}
