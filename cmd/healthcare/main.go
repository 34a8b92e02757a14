// Package main implements the healthcare demo: patients and prescriptions in
// separate keyed stores, cross-store lookups through FindBy, and the error
// paths for duplicate and missing identifiers.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/davidegreene/storelab/internal/config"
	"github.com/davidegreene/storelab/internal/domain"
	"github.com/davidegreene/storelab/internal/platform/logger"
	"github.com/davidegreene/storelab/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	appLogger := logger.Setup(cfg.App).With("run_id", uuid.NewString(), "demo", "healthcare")
	appLogger.Info("starting healthcare demo")

	patients := store.New[domain.Patient]("patient")
	prescriptions := store.New[domain.Prescription]("prescription")

	seedPatients := []struct {
		id      int
		name    string
		age     int
		ailment string
	}{
		{1, "Miriam Okafor", 54, "hypertension"},
		{2, "Jonas Feld", 31, "asthma"},
		{3, "Priya Raman", 67, "arthritis"},
	}
	for _, s := range seedPatients {
		p, err := domain.NewPatient(s.id, s.name, s.age, s.ailment)
		if err != nil {
			log.Fatalf("bad seed data: %v", err)
		}
		if err := patients.Insert(p); err != nil {
			log.Fatalf("failed to seed patients: %v", err)
		}
	}

	seedPrescriptions := []struct {
		id, patientID int
		drug, dosage  string
	}{
		{10, 1, "Lisinopril", "10mg daily"},
		{11, 2, "Salbutamol", "2 puffs as needed"},
		// Patient 9 does not exist; a dangling reference is allowed.
		{12, 9, "Ibuprofen", "400mg twice daily"},
	}
	for _, s := range seedPrescriptions {
		rx, err := domain.NewPrescription(s.id, s.patientID, s.drug, s.dosage)
		if err != nil {
			log.Fatalf("bad seed data: %v", err)
		}
		if err := prescriptions.Insert(rx); err != nil {
			log.Fatalf("failed to seed prescriptions: %v", err)
		}
	}
	appLogger.Info("seeded records",
		"patients", patients.Len(),
		"prescriptions", prescriptions.Len())

	fmt.Println("Registered patients:")
	printPatients(patients.GetAll())

	// Re-registering an existing patient id is rejected and leaves the
	// store untouched.
	dup, err := domain.NewPatient(2, "Jonas F.", 31, "asthma")
	if err != nil {
		log.Fatalf("bad seed data: %v", err)
	}
	if err := patients.Insert(dup); store.IsDuplicateError(err) {
		fmt.Printf("\nDuplicate registration rejected: %v\n", err)
	}

	// Looking up a discharged (never admitted) patient.
	if _, err := patients.GetByID(42); store.IsNotFoundError(err) {
		fmt.Printf("Lookup failed as expected: %v\n", err)
	}

	// Cross-store lookup: the patient behind each prescription.
	fmt.Println("\nPrescription review:")
	rxs := prescriptions.GetAll()
	sort.Slice(rxs, func(i, j int) bool { return rxs[i].ID < rxs[j].ID })
	for _, rx := range rxs {
		patient, ok := patients.FindBy(func(p domain.Patient) bool {
			return p.ID == rx.PatientID
		})
		if !ok {
			fmt.Printf("  %s %s -> no patient on file for id %d\n", rx.Drug, rx.Dosage, rx.PatientID)
			continue
		}
		fmt.Printf("  %s %s -> %s\n", rx.Drug, rx.Dosage, patient.Name)
	}
}

func printPatients(patients []domain.Patient) {
	sort.Slice(patients, func(i, j int) bool { return patients[i].ID < patients[j].ID })
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAGE\tAILMENT")
	for _, p := range patients {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", p.ID, p.Name, p.Age, p.Ailment)
	}
	w.Flush()
}
