package models

// Doctor is a staff record keyed by a caller-assigned id.
type Doctor struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// DoctorPatch carries a partial update. Nil fields are left untouched.
type DoctorPatch struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
}

// Empty reports whether no field was supplied.
func (p DoctorPatch) Empty() bool {
	return p.Name == nil && p.Specialty == nil
}
