package domain

import "time"

// Patient represents a person under care in the healthcare demo.
type Patient struct {
	ID      int    `json:"id"       validate:"gt=0"`
	Name    string `json:"name"     validate:"required"`
	Age     int    `json:"age"      validate:"gte=0,lte=130"`
	Ailment string `json:"ailment"`
}

// EntityID returns the patient's unique identifier.
func (p Patient) EntityID() int { return p.ID }

// NewPatient creates a Patient and validates it.
// Returns an ErrInvalidValue-wrapped error if any field is out of range.
func NewPatient(id int, name string, age int, ailment string) (Patient, error) {
	p := Patient{
		ID:      id,
		Name:    name,
		Age:     age,
		Ailment: ailment,
	}
	if err := p.Validate(); err != nil {
		return Patient{}, err
	}
	return p, nil
}

// Validate checks if the Patient has valid data.
func (p Patient) Validate() error {
	return checkStruct(p)
}

// Prescription represents a drug prescription issued to a patient.
//
// PatientID is a loose reference: it is never checked against a patient
// store, so a prescription may dangle. Cross-store lookups go through
// KeyedStore.FindBy at the call site.
type Prescription struct {
	ID        int       `json:"id"         validate:"gt=0"`
	PatientID int       `json:"patient_id" validate:"gt=0"`
	Drug      string    `json:"drug"       validate:"required"`
	Dosage    string    `json:"dosage"`
	Issued    time.Time `json:"issued"`
}

// EntityID returns the prescription's unique identifier.
func (p Prescription) EntityID() int { return p.ID }

// NewPrescription creates a Prescription issued now and validates it.
func NewPrescription(id, patientID int, drug, dosage string) (Prescription, error) {
	p := Prescription{
		ID:        id,
		PatientID: patientID,
		Drug:      drug,
		Dosage:    dosage,
		Issued:    time.Now().UTC(),
	}
	if err := p.Validate(); err != nil {
		return Prescription{}, err
	}
	return p, nil
}

// Validate checks if the Prescription has valid data.
func (p Prescription) Validate() error {
	return checkStruct(p)
}
