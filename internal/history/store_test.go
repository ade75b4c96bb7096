package history

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListInterviews(t *testing.T) {
	store := openTestStore(t)

	scores := map[int]float64{0: 6, 2: 8, 4: 10}
	iv, err := store.RecordInterview("jo@example.com", 5, 8.0, scores)
	if err != nil {
		t.Fatalf("RecordInterview failed: %v", err)
	}
	if iv.AnsweredCount != 3 {
		t.Errorf("AnsweredCount: got %d, want 3", iv.AnsweredCount)
	}

	list, err := store.ListInterviews("jo@example.com", 10)
	if err != nil {
		t.Fatalf("ListInterviews failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d interviews, want 1", len(list))
	}
	if list[0].AverageScore != 8.0 {
		t.Errorf("AverageScore: got %v, want 8.0", list[0].AverageScore)
	}
	if list[0].QuestionCount != 5 {
		t.Errorf("QuestionCount: got %d, want 5", list[0].QuestionCount)
	}

	got, err := store.Scores(iv.ID)
	if err != nil {
		t.Fatalf("Scores failed: %v", err)
	}
	if len(got) != 3 || got[2] != 8 {
		t.Errorf("Scores: got %v", got)
	}
}

func TestListInterviewsScopedToUser(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordInterview("a@example.com", 5, 7.0, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordInterview("b@example.com", 5, 9.0, nil); err != nil {
		t.Fatal(err)
	}

	list, err := store.ListInterviews("a@example.com", 10)
	if err != nil {
		t.Fatalf("ListInterviews failed: %v", err)
	}
	if len(list) != 1 || list[0].UserEmail != "a@example.com" {
		t.Errorf("expected only a@example.com's interviews, got %+v", list)
	}
}

func TestRecordAndListATSRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordATSRun("jo@example.com", 72.5, 12, 4); err != nil {
		t.Fatalf("RecordATSRun failed: %v", err)
	}

	runs, err := store.ListATSRuns("jo@example.com", 5)
	if err != nil {
		t.Fatalf("ListATSRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Score != 72.5 || runs[0].MatchedCount != 12 || runs[0].MissingCount != 4 {
		t.Errorf("run: got %+v", runs[0])
	}
}
