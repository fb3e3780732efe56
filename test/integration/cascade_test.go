//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/medrec/medrec/internal/domain/note"
	"github.com/medrec/medrec/internal/domain/patient"
	"github.com/medrec/medrec/internal/domain/summary"
)

func createTestPatient(t *testing.T, ctx context.Context, first, last string) int64 {
	t.Helper()
	repo := patient.NewRepo(globalDB.Pool)
	id, err := repo.Create(ctx, &patient.CreateInput{
		FirstName:   strPtr(first),
		LastName:    strPtr(last),
		DateOfBirth: strPtr("1985-07-20"),
		Gender:      strPtr("female"),
	})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return id
}

func TestDeletePatient_CascadesToDependents(t *testing.T) {
	ctx := context.Background()
	patients := patient.NewRepo(globalDB.Pool)
	notes := note.NewRepo(globalDB.Pool)
	summaries := summary.NewRepo(globalDB.Pool)

	pid := createTestPatient(t, ctx, "Cass", "Harper")

	noteID, err := notes.Create(ctx, &note.CreateInput{
		PatientID: &pid,
		Title:     strPtr("Follow-up visit"),
		Content:   strPtr("Patient reports improvement."),
		Category:  strPtr("consultation"),
	})
	if err != nil {
		t.Fatalf("create note: %v", err)
	}

	summaryID, err := summaries.Create(ctx, &summary.CreateInput{
		PatientID: &pid,
		Title:     strPtr("Q2 care summary"),
		Content:   strPtr("Condition stable across the quarter."),
		DateFrom:  strPtr("2024-04-01"),
		DateTo:    strPtr("2024-06-30"),
	})
	if err != nil {
		t.Fatalf("create summary: %v", err)
	}

	deleted, err := patients.Delete(ctx, pid)
	if err != nil {
		t.Fatalf("delete patient: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report true")
	}

	if n, err := notes.GetByID(ctx, noteID); err != nil {
		t.Fatalf("get note after cascade: %v", err)
	} else if n != nil {
		t.Errorf("expected note %d gone after patient delete, got %+v", noteID, n)
	}

	if s, err := summaries.GetByID(ctx, summaryID); err != nil {
		t.Fatalf("get summary after cascade: %v", err)
	} else if s != nil {
		t.Errorf("expected summary %d gone after patient delete, got %+v", summaryID, s)
	}

	if remaining, err := notes.List(ctx, &pid); err != nil {
		t.Fatalf("list notes after cascade: %v", err)
	} else if len(remaining) != 0 {
		t.Errorf("expected no notes for deleted patient, got %d", len(remaining))
	}

	if remaining, err := summaries.List(ctx, &pid); err != nil {
		t.Fatalf("list summaries after cascade: %v", err)
	} else if len(remaining) != 0 {
		t.Errorf("expected no summaries for deleted patient, got %d", len(remaining))
	}
}

func TestDeletePatient_LeavesOtherPatientsData(t *testing.T) {
	ctx := context.Background()
	patients := patient.NewRepo(globalDB.Pool)
	notes := note.NewRepo(globalDB.Pool)

	doomed := createTestPatient(t, ctx, "Ada", "Stone")
	kept := createTestPatient(t, ctx, "Bea", "Stone")

	if _, err := notes.Create(ctx, &note.CreateInput{
		PatientID: &doomed,
		Title:     strPtr("Doomed note"),
		Content:   strPtr("x"),
	}); err != nil {
		t.Fatalf("create note: %v", err)
	}
	keptNoteID, err := notes.Create(ctx, &note.CreateInput{
		PatientID: &kept,
		Title:     strPtr("Kept note"),
		Content:   strPtr("y"),
	})
	if err != nil {
		t.Fatalf("create note: %v", err)
	}

	if _, err := patients.Delete(ctx, doomed); err != nil {
		t.Fatalf("delete patient: %v", err)
	}

	n, err := notes.GetByID(ctx, keptNoteID)
	if err != nil {
		t.Fatalf("get kept note: %v", err)
	}
	if n == nil {
		t.Fatal("expected other patient's note to survive the cascade")
	}
}

func TestCreateNote_OrphanPatientRejectedByStore(t *testing.T) {
	ctx := context.Background()
	notes := note.NewRepo(globalDB.Pool)

	missing := int64(999999)
	if _, err := notes.Create(ctx, &note.CreateInput{
		PatientID: &missing,
		Title:     strPtr("Orphan"),
		Content:   strPtr("x"),
	}); err == nil {
		t.Fatal("expected foreign key violation for missing patient")
	}
}
