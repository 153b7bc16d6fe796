package schedule

import (
	"errors"

	"github.com/fjod/go_techstore/internal/ids"
)

type EquipmentType string

const (
	EquipmentNotebook   EquipmentType = "notebook"
	EquipmentSmartphone EquipmentType = "smartphone"
	EquipmentPC         EquipmentType = "pc"
)

var issuesByType = map[EquipmentType][]string{
	EquipmentNotebook:   {"Cracked screen", "SSD/RAM replacement", "OS reinstall and backup", "Weak battery", "Slow performance"},
	EquipmentSmartphone: {"Screen replacement", "Battery", "Charging port", "Camera", "Water damage"},
	EquipmentPC:         {"Assembly", "GPU/CPU upgrade", "OS reinstall", "Cleaning", "Diagnostics"},
}

// IssuesFor returns the enumerated issue list for the equipment type, nil for
// an unknown type.
func IssuesFor(t EquipmentType) []string {
	issues, ok := issuesByType[t]
	if !ok {
		return nil
	}
	out := make([]string, len(issues))
	copy(out, issues)
	return out
}

// Form is the in-progress appointment input. An unsubmitted form survives
// restarts via the session's draft key.
type Form struct {
	EquipmentType EquipmentType `json:"type"`
	Issue         string        `json:"issue"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Date          string        `json:"date"` // YYYY-MM-DD, callers enforce the minimum date
	Time          string        `json:"time"`
	Details       string        `json:"details,omitempty"`
}

// DefaultForm is the draft state before any user input: notebook with the
// first issue of its list preselected.
func DefaultForm() Form {
	return Form{
		EquipmentType: EquipmentNotebook,
		Issue:         issuesByType[EquipmentNotebook][0],
	}
}

// Complete reports whether every required field is populated.
func (f Form) Complete() bool {
	return f.Name != "" && f.Email != "" && f.Phone != "" && f.Date != "" && f.Time != ""
}

type Appointment struct {
	ID string `json:"id"`
	Form
}

var ErrMissingField = errors.New("name, email, phone, date and time are required")

// New builds an Appointment from a complete form. No id is consumed when
// the form is incomplete.
func New(f Form, gen ids.Generator) (Appointment, error) {
	if !f.Complete() {
		return Appointment{}, ErrMissingField
	}
	return Appointment{ID: gen.NewID("apt"), Form: f}, nil
}
