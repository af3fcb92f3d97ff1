package repository

import (
	"context"
	"database/sql"

	"hospital_records/internal/models"
)

type DoctorSQLite struct {
	db *sql.DB
}

func NewDoctorSQLite(db *sql.DB) *DoctorSQLite {
	return &DoctorSQLite{db: db}
}

var _ DoctorRepo = (*DoctorSQLite)(nil)

const (
	insertDoctorSQL     = `INSERT INTO doctors (id, name, specialty) VALUES (?, ?, ?) ON CONFLICT(id) DO NOTHING`
	selectDoctorsSQL    = `SELECT id, name, specialty FROM doctors ORDER BY id`
	selectDoctorByIDSQL = `SELECT id, name, specialty FROM doctors WHERE id = ?`
	updateDoctorSQL     = `UPDATE doctors SET name = COALESCE(?, name), specialty = COALESCE(?, specialty) WHERE id = ?`
	deleteDoctorSQL     = `DELETE FROM doctors WHERE id = ?`
	countDoctorsSQL     = `SELECT COUNT(*) FROM doctors`
)

var doctorQueries = recordQueries{
	entity:    "doctor",
	insert:    insertDoctorSQL,
	selectAll: selectDoctorsSQL,
	selectOne: selectDoctorByIDSQL,
	update:    updateDoctorSQL,
	remove:    deleteDoctorSQL,
	count:     countDoctorsSQL,
}

// Create inserts a doctor. Returns ErrConflict if the id is taken.
func (r *DoctorSQLite) Create(ctx context.Context, d models.Doctor) error {
	return insertRecord(ctx, r.db, doctorQueries, recordRow{id: d.ID, name: d.Name, detail: d.Specialty})
}

// List returns all doctors ordered by id. Never nil.
func (r *DoctorSQLite) List(ctx context.Context) ([]models.Doctor, error) {
	rows, err := listRecords(ctx, r.db, doctorQueries)
	if err != nil {
		return nil, err
	}
	out := make([]models.Doctor, 0, len(rows))
	for _, row := range rows {
		out = append(out, models.Doctor{ID: row.id, Name: row.name, Specialty: row.detail})
	}
	return out, nil
}

// GetByID returns ErrNotFound if no doctor has the id.
func (r *DoctorSQLite) GetByID(ctx context.Context, id int) (models.Doctor, error) {
	row, err := getRecord(ctx, r.db, doctorQueries, id)
	if err != nil {
		return models.Doctor{}, err
	}
	return models.Doctor{ID: row.id, Name: row.name, Specialty: row.detail}, nil
}

func (r *DoctorSQLite) Update(ctx context.Context, id int, p models.DoctorPatch) error {
	return updateRecord(ctx, r.db, doctorQueries, id, p.Name, p.Specialty)
}

func (r *DoctorSQLite) Delete(ctx context.Context, id int) error {
	return deleteRecord(ctx, r.db, doctorQueries, id)
}

func (r *DoctorSQLite) Count(ctx context.Context) (int, error) {
	return countRecords(ctx, r.db, doctorQueries)
}
