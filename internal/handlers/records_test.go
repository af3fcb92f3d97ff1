package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"hospital_records/internal/models"
	"hospital_records/internal/service"
)

const testToken = "tok"

func detailOf(t *testing.T, body []byte) string {
	t.Helper()
	var out errorResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal error body %q: %v", body, err)
	}
	return out.Detail
}

func messageOf(t *testing.T, body []byte) string {
	t.Helper()
	var out messageResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal message body %q: %v", body, err)
	}
	return out.Message
}

func TestRecordRoutes_RequireToken(t *testing.T) {
	s, _, _ := newTestService()
	r := newTestRouter(s)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/doctors/"},
		{http.MethodPost, "/doctors/"},
		{http.MethodGet, "/doctors/1"},
		{http.MethodPut, "/patients/1"},
		{http.MethodDelete, "/patients/1"},
		{http.MethodGet, "/summary"},
	}
	for _, p := range paths {
		w := do(r, p.method, p.path, "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status=%d, want 401", p.method, p.path, w.Code)
		}
	}

	// health and login stay public
	if w := do(r, http.MethodGet, "/health", "", ""); w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
}

func TestRecordRoutes_OpenWhenAuthDisabled(t *testing.T) {
	s, doctors, _ := newTestService()
	doctors.rows[1] = models.Doctor{ID: 1, Name: "A", Specialty: "B"}
	r := NewHandler(s, nil, Options{AuthRequired: false}).InitRoutes()

	w := do(r, http.MethodGet, "/doctors/1", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestDoctorHandlers_Create(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		code   int
		detail string
	}{
		{"created", `{"id":1,"name":"House","specialty":"Diagnostics"}`, http.StatusOK, ""},
		{"id zero accepted", `{"id":0,"name":"Zero","specialty":"None"}`, http.StatusOK, ""},
		{"duplicate", `{"id":7,"name":"Other","specialty":"X"}`, http.StatusBadRequest, "Doctor already exists."},
		{"missing specialty", `{"id":2,"name":"House"}`, http.StatusBadRequest, ""},
		{"missing id", `{"name":"House","specialty":"Diagnostics"}`, http.StatusBadRequest, ""},
		{"id wrong type", `{"id":"one","name":"House","specialty":"Diagnostics"}`, http.StatusBadRequest, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, doctors, _ := newTestService()
			doctors.rows[7] = models.Doctor{ID: 7, Name: "Seed", Specialty: "S"}
			r := newTestRouter(s)

			w := do(r, http.MethodPost, "/doctors/", tc.body, testToken)
			if w.Code != tc.code {
				t.Fatalf("status=%d, want %d, body=%s", w.Code, tc.code, w.Body.String())
			}
			if tc.code == http.StatusOK {
				if msg := messageOf(t, w.Body.Bytes()); msg != "Doctor added" {
					t.Fatalf("message=%q", msg)
				}
				return
			}
			detail := detailOf(t, w.Body.Bytes())
			if detail == "" || (tc.detail != "" && detail != tc.detail) {
				t.Fatalf("detail=%q, want %q", detail, tc.detail)
			}
		})
	}
}

func TestDoctorHandlers_DuplicateKeepsFirst(t *testing.T) {
	s, doctors, _ := newTestService()
	r := newTestRouter(s)

	do(r, http.MethodPost, "/doctors/", `{"id":3,"name":"First","specialty":"A"}`, testToken)
	w := do(r, http.MethodPost, "/doctors/", `{"id":3,"name":"Second","specialty":"B"}`, testToken)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", w.Code)
	}
	if doctors.rows[3].Name != "First" {
		t.Fatalf("first record overwritten: %+v", doctors.rows[3])
	}
}

func TestDoctorHandlers_ListAndGet(t *testing.T) {
	s, doctors, _ := newTestService()
	r := newTestRouter(s)

	w := do(r, http.MethodGet, "/doctors/", "", testToken)
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("empty list: status=%d body=%s", w.Code, w.Body.String())
	}

	doctors.rows[1] = models.Doctor{ID: 1, Name: "House", Specialty: "Diagnostics"}
	w = do(r, http.MethodGet, "/doctors/", "", testToken)
	var list []models.Doctor
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list) != 1 || list[0].Specialty != "Diagnostics" {
		t.Fatalf("unexpected list: %+v", list)
	}

	w = do(r, http.MethodGet, "/doctors/1", "", testToken)
	var got models.Doctor
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if w.Code != http.StatusOK || got != doctors.rows[1] {
		t.Fatalf("get: status=%d got=%+v", w.Code, got)
	}

	w = do(r, http.MethodGet, "/doctors/99", "", testToken)
	if w.Code != http.StatusNotFound || detailOf(t, w.Body.Bytes()) != "Doctor not found" {
		t.Fatalf("missing: status=%d body=%s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/doctors/abc", "", testToken)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status=%d", w.Code)
	}
}

func TestDoctorHandlers_PartialUpdate(t *testing.T) {
	s, doctors, _ := newTestService()
	doctors.rows[1] = models.Doctor{ID: 1, Name: "X", Specialty: "Y"}
	r := newTestRouter(s)

	w := do(r, http.MethodPut, "/doctors/1", `{"specialty":"Z"}`, testToken)
	if w.Code != http.StatusOK || messageOf(t, w.Body.Bytes()) != "Doctor updated" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if doctors.lastPatch.Name != nil {
		t.Fatalf("name should not be supplied: %v", *doctors.lastPatch.Name)
	}
	if got := doctors.rows[1]; got.Name != "X" || got.Specialty != "Z" {
		t.Fatalf("unexpected row: %+v", got)
	}

	w = do(r, http.MethodPut, "/doctors/1", `{}`, testToken)
	if w.Code != http.StatusOK {
		t.Fatalf("empty patch: status=%d", w.Code)
	}
	if got := doctors.rows[1]; got.Name != "X" || got.Specialty != "Z" {
		t.Fatalf("empty patch changed row: %+v", got)
	}

	w = do(r, http.MethodPut, "/doctors/42", `{"name":"N"}`, testToken)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id: status=%d", w.Code)
	}
}

func TestDoctorHandlers_Delete(t *testing.T) {
	s, doctors, _ := newTestService()
	doctors.rows[5] = models.Doctor{ID: 5, Name: "A", Specialty: "B"}
	r := newTestRouter(s)

	w := do(r, http.MethodDelete, "/doctors/5", "", testToken)
	if w.Code != http.StatusOK || messageOf(t, w.Body.Bytes()) != "Doctor removed" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	w = do(r, http.MethodGet, "/doctors/5", "", testToken)
	if w.Code != http.StatusNotFound {
		t.Fatalf("after delete: status=%d", w.Code)
	}
	w = do(r, http.MethodDelete, "/doctors/5", "", testToken)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: status=%d", w.Code)
	}
}

func TestDoctorHandlers_StoreErrorIsInternal(t *testing.T) {
	s, doctors, _ := newTestService()
	doctors.err = errors.New("disk full")
	r := newTestRouter(s)

	w := do(r, http.MethodGet, "/doctors/", "", testToken)
	if w.Code != http.StatusInternalServerError || detailOf(t, w.Body.Bytes()) != errInternal {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestPatientHandlers_Lifecycle(t *testing.T) {
	s, _, patients := newTestService()
	r := newTestRouter(s)

	w := do(r, http.MethodPost, "/patients/", `{"id":1,"name":"Jane","disease":"Flu"}`, testToken)
	if w.Code != http.StatusOK || messageOf(t, w.Body.Bytes()) != "Patient added" {
		t.Fatalf("create: status=%d body=%s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/patients/", `{"id":1,"name":"John","disease":"Cold"}`, testToken)
	if w.Code != http.StatusBadRequest || detailOf(t, w.Body.Bytes()) != "Patient already exists." {
		t.Fatalf("duplicate: status=%d body=%s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/patients/", `{"id":2,"name":"John"}`, testToken)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing disease: status=%d", w.Code)
	}

	w = do(r, http.MethodPut, "/patients/1", `{"disease":"Cold"}`, testToken)
	if w.Code != http.StatusOK || messageOf(t, w.Body.Bytes()) != "Patient updated" {
		t.Fatalf("update: status=%d body=%s", w.Code, w.Body.String())
	}
	if got := patients.rows[1]; got.Name != "Jane" || got.Disease != "Cold" {
		t.Fatalf("unexpected row: %+v", got)
	}

	w = do(r, http.MethodGet, "/patients/1", "", testToken)
	var got models.Patient
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Disease != "Cold" {
		t.Fatalf("get: %+v", got)
	}

	w = do(r, http.MethodDelete, "/patients/1", "", testToken)
	if w.Code != http.StatusOK || messageOf(t, w.Body.Bytes()) != "Patient removed" {
		t.Fatalf("delete: status=%d body=%s", w.Code, w.Body.String())
	}
	w = do(r, http.MethodGet, "/patients/1", "", testToken)
	if w.Code != http.StatusNotFound || detailOf(t, w.Body.Bytes()) != "Patient not found" {
		t.Fatalf("after delete: status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestSummaryHandler(t *testing.T) {
	sum := &mockSummary{summary: models.Summary{Doctors: 2, Patients: 4}}
	s := &service.Service{Authorization: &mockAuth{parseID: 1}, Summary: sum}
	r := newTestRouter(s)

	w := do(r, http.MethodGet, "/summary", "", testToken)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var got models.Summary
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got != sum.summary {
		t.Fatalf("got %+v", got)
	}

	sum.err = errors.New("boom")
	w = do(r, http.MethodGet, "/summary", "", testToken)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("error status=%d", w.Code)
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	s, _, _ := newTestService()
	r := NewHandler(s, nil, Options{AllowedOrigins: []string{"http://dash.local"}}).InitRoutes()

	req := newRequest(http.MethodOptions, "/doctors/", "")
	req.Header.Set("Origin", "http://dash.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := serve(r, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://dash.local" {
		t.Fatalf("allow-origin=%q", got)
	}
}
