package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pawkeep/pawkeep/internal/logger"
	"github.com/pawkeep/pawkeep/internal/models"
)

// Store is the single persisted JSON document. Every collection lives here
// in full; filtered per-pet views are computed on read. Each mutation
// rewrites the whole document.
type Store struct {
	Version       int                            `json:"version"`
	Pets          []models.Pet                   `json:"pets"`
	SelectedPetID string                         `json:"selected_pet_id"`
	Photos        []models.Photo                 `json:"photos"`
	Vaccinations  []models.VaccinationRecord     `json:"vaccination_records"`
	Medications   []models.Medication            `json:"medications"`
	WeightEntries []models.WeightEntry           `json:"weight_entries"`
	VetVisits     map[string]map[string][]string `json:"vet_visits"` // pet id -> date -> tasks
	Appointments  []models.Appointment           `json:"appointments"`
	Reminders     []models.Reminder              `json:"scheduled_reminders"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'pawkeep init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// A blob persisted by an older field set that no longer decodes is
		// treated as empty rather than surfaced to the caller. The warning
		// in the log file is the only trace.
		logger.Warn("Failed to decode stored data, starting from an empty collection", "path", s.path, "error", err)
		s.store = emptyStore()
		return nil
	}

	if s.store.VetVisits == nil {
		s.store.VetVisits = make(map[string]map[string][]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func emptyStore() *Store {
	return &Store{
		Version:   1,
		VetVisits: make(map[string]map[string][]string),
	}
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

// Pets

func (s *JSONStore) GetAllPets() ([]models.Pet, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	pets := make([]models.Pet, len(s.store.Pets))
	copy(pets, s.store.Pets)
	return pets, nil
}

func (s *JSONStore) AddPet(pet models.Pet) error {
	if err := s.loaded(); err != nil {
		return err
	}

	s.store.Pets = append(s.store.Pets, pet)
	// The first pet added becomes the selected pet
	if len(s.store.Pets) == 1 {
		s.store.SelectedPetID = pet.ID
	}
	return s.save()
}

func (s *JSONStore) UpdatePet(pet models.Pet) error {
	if err := s.loaded(); err != nil {
		return err
	}

	for i := range s.store.Pets {
		if s.store.Pets[i].ID == pet.ID {
			s.store.Pets[i] = pet
			return s.save()
		}
	}

	logger.Warn("UpdatePet: pet not found, nothing to do", "id", pet.ID)
	return nil
}

func (s *JSONStore) DeletePet(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	kept := s.store.Pets[:0]
	for _, p := range s.store.Pets {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.store.Pets = kept

	if s.store.SelectedPetID == id {
		s.store.SelectedPetID = ""
	}

	// Cascade: drop every record owned by the pet so no collection is left
	// holding a dangling owner id
	s.store.Photos = filterOutOwner(s.store.Photos, id, func(p models.Photo) string { return p.PetID })
	s.store.Vaccinations = filterOutOwner(s.store.Vaccinations, id, func(v models.VaccinationRecord) string { return v.PetID })
	s.store.Medications = filterOutOwner(s.store.Medications, id, func(m models.Medication) string { return m.PetID })
	s.store.WeightEntries = filterOutOwner(s.store.WeightEntries, id, func(w models.WeightEntry) string { return w.PetID })
	delete(s.store.VetVisits, id)

	return s.save()
}

func (s *JSONStore) GetSelectedPet() (models.Pet, bool, error) {
	if err := s.loaded(); err != nil {
		return models.Pet{}, false, err
	}

	if s.store.SelectedPetID == "" {
		return models.Pet{}, false, nil
	}
	for _, p := range s.store.Pets {
		if p.ID == s.store.SelectedPetID {
			return p, true, nil
		}
	}
	// Dangling pointer: tolerated, reads resolve to "no selection"
	return models.Pet{}, false, nil
}

func (s *JSONStore) SelectPet(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.SelectedPetID = id
	return s.save()
}

// Photos

func (s *JSONStore) GetAllPhotos() ([]models.Photo, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	photos := make([]models.Photo, len(s.store.Photos))
	copy(photos, s.store.Photos)
	return photos, nil
}

func (s *JSONStore) GetPhotosForPet(petID string) ([]models.Photo, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return filterByOwner(s.store.Photos, petID, func(p models.Photo) string { return p.PetID }), nil
}

func (s *JSONStore) AddPhoto(photo models.Photo) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Photos = append(s.store.Photos, photo)
	return s.save()
}

func (s *JSONStore) UpdatePhoto(photo models.Photo) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i := range s.store.Photos {
		if s.store.Photos[i].ID == photo.ID {
			s.store.Photos[i] = photo
			return s.save()
		}
	}
	logger.Warn("UpdatePhoto: photo not found, nothing to do", "id", photo.ID)
	return nil
}

func (s *JSONStore) DeletePhoto(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Photos = filterOutID(s.store.Photos, id, func(p models.Photo) string { return p.ID })
	return s.save()
}

func (s *JSONStore) DeletePhotosForPet(petID string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Photos = filterOutOwner(s.store.Photos, petID, func(p models.Photo) string { return p.PetID })
	return s.save()
}

// Vaccination records

func (s *JSONStore) GetAllVaccinations() ([]models.VaccinationRecord, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	records := make([]models.VaccinationRecord, len(s.store.Vaccinations))
	copy(records, s.store.Vaccinations)
	return records, nil
}

func (s *JSONStore) GetVaccinationsForPet(petID string) ([]models.VaccinationRecord, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	records := filterByOwner(s.store.Vaccinations, petID, func(v models.VaccinationRecord) string { return v.PetID })
	// History is shown newest administered first
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DateAdministered.After(records[j].DateAdministered)
	})
	return records, nil
}

func (s *JSONStore) AddVaccination(record models.VaccinationRecord) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Vaccinations = append(s.store.Vaccinations, record)
	return s.save()
}

func (s *JSONStore) UpdateVaccination(record models.VaccinationRecord) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i := range s.store.Vaccinations {
		if s.store.Vaccinations[i].ID == record.ID {
			s.store.Vaccinations[i] = record
			return s.save()
		}
	}
	logger.Warn("UpdateVaccination: record not found, nothing to do", "id", record.ID)
	return nil
}

func (s *JSONStore) DeleteVaccination(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Vaccinations = filterOutID(s.store.Vaccinations, id, func(v models.VaccinationRecord) string { return v.ID })
	return s.save()
}

func (s *JSONStore) DeleteVaccinationsForPet(petID string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Vaccinations = filterOutOwner(s.store.Vaccinations, petID, func(v models.VaccinationRecord) string { return v.PetID })
	return s.save()
}

// Medications

func (s *JSONStore) GetAllMedications() ([]models.Medication, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	meds := make([]models.Medication, len(s.store.Medications))
	copy(meds, s.store.Medications)
	return meds, nil
}

func (s *JSONStore) GetMedicationsForPet(petID string) ([]models.Medication, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return filterByOwner(s.store.Medications, petID, func(m models.Medication) string { return m.PetID }), nil
}

func (s *JSONStore) AddMedication(med models.Medication) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Medications = append(s.store.Medications, med)
	return s.save()
}

func (s *JSONStore) UpdateMedication(med models.Medication) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i := range s.store.Medications {
		if s.store.Medications[i].ID == med.ID {
			s.store.Medications[i] = med
			return s.save()
		}
	}
	logger.Warn("UpdateMedication: medication not found, nothing to do", "id", med.ID)
	return nil
}

func (s *JSONStore) DeleteMedication(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Medications = filterOutID(s.store.Medications, id, func(m models.Medication) string { return m.ID })
	return s.save()
}

func (s *JSONStore) DeleteMedicationsForPet(petID string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Medications = filterOutOwner(s.store.Medications, petID, func(m models.Medication) string { return m.PetID })
	return s.save()
}

// Weight entries

func (s *JSONStore) GetAllWeightEntries() ([]models.WeightEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	entries := make([]models.WeightEntry, len(s.store.WeightEntries))
	copy(entries, s.store.WeightEntries)
	return entries, nil
}

func (s *JSONStore) GetWeightEntriesForPet(petID string) ([]models.WeightEntry, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return filterByOwner(s.store.WeightEntries, petID, func(w models.WeightEntry) string { return w.PetID }), nil
}

func (s *JSONStore) AddWeightEntry(entry models.WeightEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.WeightEntries = append(s.store.WeightEntries, entry)
	return s.save()
}

func (s *JSONStore) UpdateWeightEntry(entry models.WeightEntry) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i := range s.store.WeightEntries {
		if s.store.WeightEntries[i].ID == entry.ID {
			s.store.WeightEntries[i] = entry
			return s.save()
		}
	}
	logger.Warn("UpdateWeightEntry: entry not found, nothing to do", "id", entry.ID)
	return nil
}

func (s *JSONStore) DeleteWeightEntry(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.WeightEntries = filterOutID(s.store.WeightEntries, id, func(w models.WeightEntry) string { return w.ID })
	return s.save()
}

func (s *JSONStore) DeleteWeightEntriesForPet(petID string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.WeightEntries = filterOutOwner(s.store.WeightEntries, petID, func(w models.WeightEntry) string { return w.PetID })
	return s.save()
}

// Vet-visit tasks

func (s *JSONStore) GetVisitTasks(petID string) (map[string][]string, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	tasks := make(map[string][]string)
	for date, list := range s.store.VetVisits[petID] {
		tasks[date] = append([]string(nil), list...)
	}
	return tasks, nil
}

func (s *JSONStore) AddVisitTask(petID, date, text string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if petID == "" {
		return fmt.Errorf("visit task must belong to a pet")
	}

	if s.store.VetVisits[petID] == nil {
		s.store.VetVisits[petID] = make(map[string][]string)
	}
	s.store.VetVisits[petID][date] = append(s.store.VetVisits[petID][date], text)
	return s.save()
}

func (s *JSONStore) EditVisitTask(petID, date string, index int, text string) error {
	if err := s.loaded(); err != nil {
		return err
	}

	list := s.store.VetVisits[petID][date]
	if index < 0 || index >= len(list) {
		return fmt.Errorf("no task at position %d for %s", index, date)
	}
	list[index] = text
	return s.save()
}

func (s *JSONStore) DeleteVisitTask(petID, date string, index int) error {
	if err := s.loaded(); err != nil {
		return err
	}

	list := s.store.VetVisits[petID][date]
	if index < 0 || index >= len(list) {
		return fmt.Errorf("no task at position %d for %s", index, date)
	}

	list = append(list[:index], list[index+1:]...)
	if len(list) == 0 {
		delete(s.store.VetVisits[petID], date)
	} else {
		s.store.VetVisits[petID][date] = list
	}
	return s.save()
}

func (s *JSONStore) DeleteVisitTasksForPet(petID string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	delete(s.store.VetVisits, petID)
	return s.save()
}

// Appointments

func (s *JSONStore) GetAppointments(completed bool) ([]models.Appointment, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}

	var appts []models.Appointment
	for _, a := range s.store.Appointments {
		if a.Completed == completed {
			appts = append(appts, a)
		}
	}
	return appts, nil
}

func (s *JSONStore) AddAppointment(appt models.Appointment) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Appointments = append(s.store.Appointments, appt)
	return s.save()
}

func (s *JSONStore) UpdateAppointment(appt models.Appointment) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i := range s.store.Appointments {
		if s.store.Appointments[i].ID == appt.ID {
			s.store.Appointments[i] = appt
			return s.save()
		}
	}
	logger.Warn("UpdateAppointment: appointment not found, nothing to do", "id", appt.ID)
	return nil
}

func (s *JSONStore) CompleteAppointment(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	for i := range s.store.Appointments {
		if s.store.Appointments[i].ID == id {
			s.store.Appointments[i].Completed = true
			return s.save()
		}
	}
	return fmt.Errorf("appointment not found: %s", id)
}

func (s *JSONStore) DeleteAppointment(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Appointments = filterOutID(s.store.Appointments, id, func(a models.Appointment) string { return a.ID })
	return s.save()
}

// Scheduled reminders

func (s *JSONStore) GetReminders() ([]models.Reminder, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	reminders := make([]models.Reminder, len(s.store.Reminders))
	copy(reminders, s.store.Reminders)
	return reminders, nil
}

func (s *JSONStore) AddReminder(reminder models.Reminder) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Reminders = append(s.store.Reminders, reminder)
	return s.save()
}

func (s *JSONStore) DeleteReminder(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Reminders = filterOutID(s.store.Reminders, id, func(r models.Reminder) string { return r.ID })
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// filterByOwner returns the items owned by petID. An empty petID matches
// nothing: an unselected or dangling pet never sees another pet's records.
func filterByOwner[T any](items []T, petID string, owner func(T) string) []T {
	if petID == "" {
		return nil
	}
	var out []T
	for _, item := range items {
		if owner(item) == petID {
			out = append(out, item)
		}
	}
	return out
}

func filterOutOwner[T any](items []T, petID string, owner func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if owner(item) != petID {
			out = append(out, item)
		}
	}
	return out
}

func filterOutID[T any](items []T, id string, itemID func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if itemID(item) != id {
			out = append(out, item)
		}
	}
	return out
}
