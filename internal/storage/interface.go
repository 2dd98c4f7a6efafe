package storage

import "github.com/pawkeep/pawkeep/internal/models"

// Provider is the persistence contract shared by the JSON document store and
// the SQLite store. Call sites never touch the underlying files directly;
// collection lifecycles are only visible through these operations.
//
// Per-pet getters filter the authoritative full collection; an empty or
// dangling pet id yields an empty result, never an error. Mutations always
// act on the full collection, so one pet's edits can never drop another
// pet's records.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Pets (registry). AddPet selects the pet when it is the first one;
	// DeletePet clears the selected pointer when it matches and cascades to
	// every pet-owned collection.
	GetAllPets() ([]models.Pet, error)
	AddPet(models.Pet) error
	UpdatePet(models.Pet) error
	DeletePet(id string) error
	GetSelectedPet() (models.Pet, bool, error)
	SelectPet(id string) error

	// Photos
	GetAllPhotos() ([]models.Photo, error)
	GetPhotosForPet(petID string) ([]models.Photo, error)
	AddPhoto(models.Photo) error
	UpdatePhoto(models.Photo) error
	DeletePhoto(id string) error
	DeletePhotosForPet(petID string) error

	// Vaccination records. GetVaccinationsForPet returns records newest
	// administered first.
	GetAllVaccinations() ([]models.VaccinationRecord, error)
	GetVaccinationsForPet(petID string) ([]models.VaccinationRecord, error)
	AddVaccination(models.VaccinationRecord) error
	UpdateVaccination(models.VaccinationRecord) error
	DeleteVaccination(id string) error
	DeleteVaccinationsForPet(petID string) error

	// Medications
	GetAllMedications() ([]models.Medication, error)
	GetMedicationsForPet(petID string) ([]models.Medication, error)
	AddMedication(models.Medication) error
	UpdateMedication(models.Medication) error
	DeleteMedication(id string) error
	DeleteMedicationsForPet(petID string) error

	// Weight entries
	GetAllWeightEntries() ([]models.WeightEntry, error)
	GetWeightEntriesForPet(petID string) ([]models.WeightEntry, error)
	AddWeightEntry(models.WeightEntry) error
	UpdateWeightEntry(models.WeightEntry) error
	DeleteWeightEntry(id string) error
	DeleteWeightEntriesForPet(petID string) error

	// Vet-visit tasks, kept per pet as a date (YYYY-MM-DD) -> ordered task
	// list map. Task edits address tasks by position.
	GetVisitTasks(petID string) (map[string][]string, error)
	AddVisitTask(petID, date, text string) error
	EditVisitTask(petID, date string, index int, text string) error
	DeleteVisitTask(petID, date string, index int) error
	DeleteVisitTasksForPet(petID string) error

	// Appointments (not pet-scoped; upcoming and completed lists)
	GetAppointments(completed bool) ([]models.Appointment, error)
	AddAppointment(models.Appointment) error
	UpdateAppointment(models.Appointment) error
	CompleteAppointment(id string) error
	DeleteAppointment(id string) error

	// Scheduled reminders (local record of agent-registered notifications)
	GetReminders() ([]models.Reminder, error)
	AddReminder(models.Reminder) error
	DeleteReminder(id string) error

	// Utils
	GetConfigPath() string
}
