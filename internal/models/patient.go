package models

// Patient is a patient record keyed by a caller-assigned id.
type Patient struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Disease string `json:"disease"`
}

// PatientPatch carries a partial update. Nil fields are left untouched.
type PatientPatch struct {
	Name    *string `json:"name,omitempty"`
	Disease *string `json:"disease,omitempty"`
}

func (p PatientPatch) Empty() bool {
	return p.Name == nil && p.Disease == nil
}
