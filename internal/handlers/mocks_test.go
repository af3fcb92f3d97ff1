package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"

	"hospital_records/internal/models"
	"hospital_records/internal/repository"
	"hospital_records/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	loginToken string
	loginErr   error
	parseID    int
	parseErr   error

	lastLoginUsername string
	lastLoginPassword string
	lastParseToken    string
}

func (m *mockAuth) EnsureSeedUser(context.Context, string, string) (bool, error) {
	return false, nil
}
func (m *mockAuth) Login(_ context.Context, username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockDoctors keeps doctors in a map and lets a test force an error.
type mockDoctors struct {
	rows      map[int]models.Doctor
	err       error
	lastPatch models.DoctorPatch
}

func newMockDoctors(seed ...models.Doctor) *mockDoctors {
	m := &mockDoctors{rows: map[int]models.Doctor{}}
	for _, d := range seed {
		m.rows[d.ID] = d
	}
	return m
}

func (m *mockDoctors) CreateDoctor(_ context.Context, d models.Doctor) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[d.ID]; ok {
		return repository.ErrConflict
	}
	m.rows[d.ID] = d
	return nil
}
func (m *mockDoctors) ListDoctors(context.Context) ([]models.Doctor, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Doctor, 0, len(m.rows))
	for _, d := range m.rows {
		out = append(out, d)
	}
	return out, nil
}
func (m *mockDoctors) GetDoctor(_ context.Context, id int) (models.Doctor, error) {
	d, ok := m.rows[id]
	if !ok {
		return models.Doctor{}, repository.ErrNotFound
	}
	return d, nil
}
func (m *mockDoctors) UpdateDoctor(_ context.Context, id int, p models.DoctorPatch) error {
	m.lastPatch = p
	d, ok := m.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Specialty != nil {
		d.Specialty = *p.Specialty
	}
	m.rows[id] = d
	return nil
}
func (m *mockDoctors) DeleteDoctor(_ context.Context, id int) error {
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type mockPatients struct {
	rows map[int]models.Patient
}

func newMockPatients() *mockPatients { return &mockPatients{rows: map[int]models.Patient{}} }

func (m *mockPatients) CreatePatient(_ context.Context, p models.Patient) error {
	if _, ok := m.rows[p.ID]; ok {
		return repository.ErrConflict
	}
	m.rows[p.ID] = p
	return nil
}
func (m *mockPatients) ListPatients(context.Context) ([]models.Patient, error) {
	out := make([]models.Patient, 0, len(m.rows))
	for _, p := range m.rows {
		out = append(out, p)
	}
	return out, nil
}
func (m *mockPatients) GetPatient(_ context.Context, id int) (models.Patient, error) {
	p, ok := m.rows[id]
	if !ok {
		return models.Patient{}, repository.ErrNotFound
	}
	return p, nil
}
func (m *mockPatients) UpdatePatient(_ context.Context, id int, patch models.PatientPatch) error {
	p, ok := m.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Disease != nil {
		p.Disease = *patch.Disease
	}
	m.rows[id] = p
	return nil
}
func (m *mockPatients) DeletePatient(_ context.Context, id int) error {
	if _, ok := m.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type mockSummary struct {
	summary models.Summary
	err     error
	calls   int
}

func (m *mockSummary) GetSummary(context.Context) (models.Summary, error) {
	m.calls++
	return m.summary, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, Options{AuthRequired: true})
	return h.InitRoutes()
}

// newTestService returns a service whose auth accepts any bearer token as user 1.
func newTestService() (*service.Service, *mockDoctors, *mockPatients) {
	doctors := newMockDoctors()
	patients := newMockPatients()
	return &service.Service{
		Authorization: &mockAuth{parseID: 1},
		Doctors:       doctors,
		Patients:      patients,
		Summary:       &mockSummary{},
	}, doctors, patients
}

func newRequest(method, path, body string) *http.Request {
	if body == "" {
		return httptest.NewRequest(method, path, nil)
	}
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// do issues a request with a bearer token (omitted when token is empty).
func do(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := newRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return serve(r, req)
}
