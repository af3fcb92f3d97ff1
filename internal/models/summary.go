package models

// Summary is the record count snapshot shown on the dashboard.
type Summary struct {
	Doctors  int `json:"doctors"`
	Patients int `json:"patients"`
}
