package seed

import (
	"log/slog"

	"github.com/medivista-dev/hospital-portal/backend/internal/domain"
	"github.com/medivista-dev/hospital-portal/backend/internal/repository"
)

var specialtyNames = []string{
	"Cardiology",
	"Dermatology",
	"General Medicine",
	"Neurology",
	"Orthopedics",
	"Pediatrics",
	"Radiology",
}

// Doctors whose rosters mirror the real outpatient department: morning
// and evening shifts, 20 or 30 minute consultation slots.
var doctorRoster = map[string]domain.Doctor{
	"Dr. Asha Menon": {
		Email:         "asha.menon@medivista.example",
		ShiftStart:    "08:00",
		ShiftEnd:      "16:00",
		SlotInterval:  20,
		NurseAssigned: "Rita Fernandes",
	},
	"Dr. Vikram Rao": {
		Email:         "vikram.rao@medivista.example",
		ShiftStart:    "09:00",
		ShiftEnd:      "13:00",
		SlotInterval:  30,
		NurseAssigned: "Leela Nair",
	},
	"Dr. Sarah Thomas": {
		Email:         "sarah.thomas@medivista.example",
		ShiftStart:    "14:00",
		ShiftEnd:      "20:00",
		SlotInterval:  20,
		NurseAssigned: "Grace Evans",
	},
	"Dr. Imran Qureshi": {
		Email:         "imran.qureshi@medivista.example",
		ShiftStart:    "10:00",
		ShiftEnd:      "18:00",
		SlotInterval:  30,
		NurseAssigned: "Priya Joshi",
	},
}

// SeedBaseData inserts the fixed specialties and the doctor roster.
// Inserts that collide with existing rows are logged and skipped so the
// seeder can be re-run.
func SeedBaseData(r *repository.Repository) {
	specialtyIDs := make([]int64, 0, len(specialtyNames))

	for _, name := range specialtyNames {
		s := &domain.Specialty{Name: name}
		if err := r.CreateSpecialty(s); err != nil {
			slog.Error("unable to insert specialty", "name", name, "error", err)
			continue
		}
		specialtyIDs = append(specialtyIDs, s.ID)
	}

	if len(specialtyIDs) == 0 {
		slog.Error("no specialties inserted, skipping doctor roster")
		return
	}

	i := 0
	for name, d := range doctorRoster {
		doctor := d
		doctor.FullName = name
		doctor.SpecialtyID = specialtyIDs[i%len(specialtyIDs)]
		i++

		if err := r.CreateDoctor(&doctor); err != nil {
			slog.Error("unable to insert doctor", "name", name, "error", err)
			continue
		}
	}

	slog.Info("base data seeded", "specialties", len(specialtyIDs), "doctors", len(doctorRoster))
}
