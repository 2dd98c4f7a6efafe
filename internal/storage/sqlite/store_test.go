package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pawkeep/pawkeep/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "pawkeep.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func addTestPet(t *testing.T, store *Store, id, name string) models.Pet {
	t.Helper()
	pet := models.Pet{ID: id, Name: name, CreatedAt: time.Now()}
	if err := store.AddPet(pet); err != nil {
		t.Fatalf("failed to add pet %s: %v", name, err)
	}
	return pet
}

func TestLoad(t *testing.T) {
	t.Run("missing database errors", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
		if err := store.Load(); err == nil {
			t.Error("Load() on missing database = nil, want error")
		}
	})

	t.Run("initialized database loads", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pawkeep.db")
		store := NewStore(path)
		if err := store.Init(); err != nil {
			t.Fatalf("failed to init store: %v", err)
		}
		store.Close()

		reopened := NewStore(path)
		if err := reopened.Load(); err != nil {
			t.Fatalf("Load() on initialized database = %v, want nil", err)
		}
		reopened.Close()
	})
}

func TestPets(t *testing.T) {
	t.Run("add and list round trip", func(t *testing.T) {
		store := setupTestStore(t)
		addTestPet(t, store, "p1", "Rex")
		addTestPet(t, store, "p2", "Fido")

		pets, err := store.GetAllPets()
		if err != nil {
			t.Fatalf("GetAllPets() returned unexpected error: %v", err)
		}
		if len(pets) != 2 || pets[0].Name != "Rex" || pets[1].Name != "Fido" {
			t.Errorf("pets = %v, want [Rex Fido]", pets)
		}
	})

	t.Run("first pet becomes selected", func(t *testing.T) {
		store := setupTestStore(t)
		addTestPet(t, store, "p1", "Rex")
		addTestPet(t, store, "p2", "Fido")

		selected, ok, err := store.GetSelectedPet()
		if err != nil {
			t.Fatalf("GetSelectedPet() returned unexpected error: %v", err)
		}
		if !ok || selected.ID != "p1" {
			t.Errorf("selected = %s (ok=%v), want p1", selected.ID, ok)
		}
	})

	t.Run("dangling selection resolves to none", func(t *testing.T) {
		store := setupTestStore(t)
		addTestPet(t, store, "p1", "Rex")
		if err := store.SelectPet("ghost"); err != nil {
			t.Fatalf("SelectPet() returned unexpected error: %v", err)
		}

		_, ok, err := store.GetSelectedPet()
		if err != nil {
			t.Fatalf("GetSelectedPet() returned unexpected error: %v", err)
		}
		if ok {
			t.Error("GetSelectedPet() ok = true for dangling pointer, want false")
		}
	})

	t.Run("update pet", func(t *testing.T) {
		store := setupTestStore(t)
		pet := addTestPet(t, store, "p1", "Rex")

		pet.Age = "4"
		if err := store.UpdatePet(pet); err != nil {
			t.Fatalf("UpdatePet() returned unexpected error: %v", err)
		}
		pets, _ := store.GetAllPets()
		if pets[0].Age != "4" {
			t.Errorf("age after update = %q, want 4", pets[0].Age)
		}
	})
}

func TestCascadeDelete(t *testing.T) {
	store := setupTestStore(t)
	addTestPet(t, store, "rex", "Rex")
	addTestPet(t, store, "fido", "Fido")

	if err := store.AddPhoto(models.Photo{ID: "ph1", PetID: "rex", Image: []byte{1}, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("AddPhoto() returned unexpected error: %v", err)
	}
	if err := store.AddPhoto(models.Photo{ID: "ph2", PetID: "fido", Image: []byte{2}, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("AddPhoto() returned unexpected error: %v", err)
	}
	if err := store.AddVaccination(models.VaccinationRecord{ID: "v1", PetID: "rex", VaccineName: "Rabies", DateAdministered: time.Now()}); err != nil {
		t.Fatalf("AddVaccination() returned unexpected error: %v", err)
	}
	if err := store.AddMedication(models.Medication{ID: "m1", PetID: "rex", Name: "Heartgard"}); err != nil {
		t.Fatalf("AddMedication() returned unexpected error: %v", err)
	}
	if err := store.AddWeightEntry(models.WeightEntry{ID: "w1", PetID: "rex", Date: time.Now(), Weight: 12.5}); err != nil {
		t.Fatalf("AddWeightEntry() returned unexpected error: %v", err)
	}
	if err := store.AddVisitTask("rex", "2025-06-01", "Ask about limp"); err != nil {
		t.Fatalf("AddVisitTask() returned unexpected error: %v", err)
	}

	if err := store.DeletePet("rex"); err != nil {
		t.Fatalf("DeletePet() returned unexpected error: %v", err)
	}

	if photos, _ := store.GetPhotosForPet("rex"); len(photos) != 0 {
		t.Errorf("rex photos after delete = %d, want 0", len(photos))
	}
	if recs, _ := store.GetVaccinationsForPet("rex"); len(recs) != 0 {
		t.Errorf("rex vaccinations after delete = %d, want 0", len(recs))
	}
	if meds, _ := store.GetMedicationsForPet("rex"); len(meds) != 0 {
		t.Errorf("rex medications after delete = %d, want 0", len(meds))
	}
	if entries, _ := store.GetWeightEntriesForPet("rex"); len(entries) != 0 {
		t.Errorf("rex weight entries after delete = %d, want 0", len(entries))
	}
	if visits, _ := store.GetVisitTasks("rex"); len(visits) != 0 {
		t.Errorf("rex visit tasks after delete = %d days, want 0", len(visits))
	}
	if _, ok, _ := store.GetSelectedPet(); ok {
		t.Error("selection survived deleting the selected pet")
	}
	if photos, _ := store.GetPhotosForPet("fido"); len(photos) != 1 {
		t.Errorf("fido photos after rex delete = %d, want 1", len(photos))
	}
}

func TestVaccinationOrdering(t *testing.T) {
	store := setupTestStore(t)
	addTestPet(t, store, "rex", "Rex")

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, rec := range []models.VaccinationRecord{
		{ID: "v1", PetID: "rex", VaccineName: "Oldest", DateAdministered: base},
		{ID: "v2", PetID: "rex", VaccineName: "Newest", DateAdministered: base.AddDate(1, 0, 0)},
		{ID: "v3", PetID: "rex", VaccineName: "Middle", DateAdministered: base.AddDate(0, 6, 0)},
	} {
		if err := store.AddVaccination(rec); err != nil {
			t.Fatalf("AddVaccination(%s) returned unexpected error: %v", rec.ID, err)
		}
	}

	recs, err := store.GetVaccinationsForPet("rex")
	if err != nil {
		t.Fatalf("GetVaccinationsForPet() returned unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("records = %d, want 3", len(recs))
	}
	if recs[0].VaccineName != "Newest" || recs[2].VaccineName != "Oldest" {
		t.Errorf("order = [%s %s %s], want newest first", recs[0].VaccineName, recs[1].VaccineName, recs[2].VaccineName)
	}
}

func TestVaccinationDueDateRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	addTestPet(t, store, "rex", "Rex")

	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rec := models.VaccinationRecord{
		ID:               "v1",
		PetID:            "rex",
		VaccineName:      "Rabies",
		DateAdministered: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		NextDueDate:      &due,
		AdministeredBy:   "Dr. Chen",
	}
	if err := store.AddVaccination(rec); err != nil {
		t.Fatalf("AddVaccination() returned unexpected error: %v", err)
	}

	recs, _ := store.GetVaccinationsForPet("rex")
	if len(recs) != 1 {
		t.Fatalf("records = %d, want 1", len(recs))
	}
	if recs[0].NextDueDate == nil || !recs[0].NextDueDate.Equal(due) {
		t.Errorf("next due = %v, want %v", recs[0].NextDueDate, due)
	}

	// A record without a due date stays without one
	if err := store.AddVaccination(models.VaccinationRecord{ID: "v2", PetID: "rex", VaccineName: "Bordetella", DateAdministered: time.Now()}); err != nil {
		t.Fatalf("AddVaccination() returned unexpected error: %v", err)
	}
	recs, _ = store.GetVaccinationsForPet("rex")
	for _, r := range recs {
		if r.ID == "v2" && r.NextDueDate != nil {
			t.Errorf("v2 next due = %v, want nil", r.NextDueDate)
		}
	}
}

func TestVisitTasks(t *testing.T) {
	t.Run("order preserved within a day", func(t *testing.T) {
		store := setupTestStore(t)
		addTestPet(t, store, "rex", "Rex")

		for _, task := range []string{"first", "second", "third"} {
			if err := store.AddVisitTask("rex", "2025-06-01", task); err != nil {
				t.Fatalf("AddVisitTask(%s) returned unexpected error: %v", task, err)
			}
		}

		visits, err := store.GetVisitTasks("rex")
		if err != nil {
			t.Fatalf("GetVisitTasks() returned unexpected error: %v", err)
		}
		tasks := visits["2025-06-01"]
		if len(tasks) != 3 || tasks[0] != "first" || tasks[2] != "third" {
			t.Errorf("tasks = %v, want [first second third]", tasks)
		}
	})

	t.Run("index addressing survives sparse positions", func(t *testing.T) {
		store := setupTestStore(t)
		addTestPet(t, store, "rex", "Rex")
		for _, task := range []string{"a", "b", "c"} {
			store.AddVisitTask("rex", "2025-06-01", task)
		}

		// Deleting the middle task leaves a position gap; index 1 must now
		// address "c".
		if err := store.DeleteVisitTask("rex", "2025-06-01", 1); err != nil {
			t.Fatalf("DeleteVisitTask() returned unexpected error: %v", err)
		}
		if err := store.EditVisitTask("rex", "2025-06-01", 1, "c-updated"); err != nil {
			t.Fatalf("EditVisitTask() returned unexpected error: %v", err)
		}

		visits, _ := store.GetVisitTasks("rex")
		tasks := visits["2025-06-01"]
		if len(tasks) != 2 || tasks[0] != "a" || tasks[1] != "c-updated" {
			t.Errorf("tasks = %v, want [a c-updated]", tasks)
		}
	})

	t.Run("out of range index errors", func(t *testing.T) {
		store := setupTestStore(t)
		addTestPet(t, store, "rex", "Rex")
		store.AddVisitTask("rex", "2025-06-01", "only")

		if err := store.EditVisitTask("rex", "2025-06-01", 3, "nope"); err == nil {
			t.Error("EditVisitTask() out of range = nil, want error")
		}
	})
}

func TestAppointments(t *testing.T) {
	store := setupTestStore(t)
	when := time.Date(2025, 9, 10, 14, 0, 0, 0, time.UTC)

	if err := store.AddAppointment(models.Appointment{ID: "a1", Text: "Annual checkup", Date: when}); err != nil {
		t.Fatalf("AddAppointment() returned unexpected error: %v", err)
	}
	if err := store.AddAppointment(models.Appointment{ID: "a2", Text: "Dental cleaning", Date: when.AddDate(0, 1, 0)}); err != nil {
		t.Fatalf("AddAppointment() returned unexpected error: %v", err)
	}

	if err := store.CompleteAppointment("a1"); err != nil {
		t.Fatalf("CompleteAppointment() returned unexpected error: %v", err)
	}
	if err := store.CompleteAppointment("ghost"); err == nil {
		t.Error("CompleteAppointment() for missing id = nil, want error")
	}

	upcoming, err := store.GetAppointments(false)
	if err != nil {
		t.Fatalf("GetAppointments() returned unexpected error: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != "a2" {
		t.Errorf("upcoming = %v, want only a2", upcoming)
	}
	completed, _ := store.GetAppointments(true)
	if len(completed) != 1 || completed[0].ID != "a1" {
		t.Errorf("completed = %v, want only a1", completed)
	}
}

func TestReminders(t *testing.T) {
	store := setupTestStore(t)

	anchor := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	rem := models.Reminder{ID: "r1", Title: "Flea treatment", Anchor: anchor, Recurrence: "monthly", CreatedAt: time.Now()}
	if err := store.AddReminder(rem); err != nil {
		t.Fatalf("AddReminder() returned unexpected error: %v", err)
	}

	rems, err := store.GetReminders()
	if err != nil {
		t.Fatalf("GetReminders() returned unexpected error: %v", err)
	}
	if len(rems) != 1 {
		t.Fatalf("reminders = %d, want 1", len(rems))
	}
	if rems[0].Recurrence != "monthly" || !rems[0].Anchor.Equal(anchor) {
		t.Errorf("reminder = %+v, want monthly at %v", rems[0], anchor)
	}

	if err := store.DeleteReminder("r1"); err != nil {
		t.Fatalf("DeleteReminder() returned unexpected error: %v", err)
	}
	if rems, _ := store.GetReminders(); len(rems) != 0 {
		t.Errorf("reminders after delete = %d, want 0", len(rems))
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pawkeep.db")
	store := NewStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	addTestPet(t, store, "rex", "Rex")
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	defer reopened.Close()

	pets, err := reopened.GetAllPets()
	if err != nil {
		t.Fatalf("GetAllPets() returned unexpected error: %v", err)
	}
	if len(pets) != 1 || pets[0].Name != "Rex" {
		t.Fatalf("reloaded pets = %v, want Rex", pets)
	}
	selected, ok, _ := reopened.GetSelectedPet()
	if !ok || selected.ID != "rex" {
		t.Errorf("reloaded selection = %s (ok=%v), want rex", selected.ID, ok)
	}
}
