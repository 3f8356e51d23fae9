package repositories

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"croner/backend/internal/testhelpers"
)

func newTestsRepo(t *testing.T) *TestsRepository {
	t.Helper()
	return &TestsRepository{DB: testhelpers.SetupTestDB(t)}
}

func TestTestsRepository_Create(t *testing.T) {
	repo := newTestsRepo(t)

	t.Run("missing fields", func(t *testing.T) {
		if _, err := repo.Create("", "workspace1", []string{"maths"}); !errors.Is(err, ErrMissingInput) {
			t.Fatalf("expected ErrMissingInput, got %v", err)
		}
		if _, err := repo.Create("admin123", "", []string{"maths"}); !errors.Is(err, ErrMissingInput) {
			t.Fatalf("expected ErrMissingInput, got %v", err)
		}
		if _, err := repo.Create("admin123", "workspace1", nil); !errors.Is(err, ErrMissingInput) {
			t.Fatalf("expected ErrMissingInput for empty subjects, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		test, err := repo.Create("admin123", "workspace1", []string{"maths", "physics"})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if !strings.HasPrefix(test.TestID, "test") {
			t.Fatalf("expected test prefix, got %q", test.TestID)
		}
		if !reflect.DeepEqual(test.Subjects, []string{"maths", "physics"}) {
			t.Fatalf("expected subjects persisted, got %v", test.Subjects)
		}
	})
}

func TestTestsRepository_FindAllByWorkspace(t *testing.T) {
	repo := newTestsRepo(t)
	for _, ws := range []string{"workspace1", "workspace1", "workspace2"} {
		if _, err := repo.Create("admin123", ws, []string{"maths"}); err != nil {
			t.Fatalf("failed to seed test: %v", err)
		}
	}

	tests, err := repo.FindAllByWorkspace("workspace1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tests) != 2 {
		t.Fatalf("expected 2 tests, got %d", len(tests))
	}

	if _, err := repo.FindAllByWorkspace(""); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
}

func TestTestsRepository_Update(t *testing.T) {
	repo := newTestsRepo(t)
	seeded, err := repo.Create("admin123", "workspace1", []string{"maths"})
	if err != nil {
		t.Fatalf("failed to seed test: %v", err)
	}

	t.Run("partial update preserves other columns", func(t *testing.T) {
		got, err := repo.Update(seeded.TestID, "", "workspace2", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.WorkspaceID != "workspace2" {
			t.Fatalf("expected workspace updated, got %q", got.WorkspaceID)
		}
		if got.AdminID != "admin123" || !reflect.DeepEqual(got.Subjects, []string{"maths"}) {
			t.Fatalf("expected other columns preserved, got %+v", got)
		}
	})

	t.Run("no fields is a no-op read", func(t *testing.T) {
		got, err := repo.Update(seeded.TestID, "", "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.WorkspaceID != "workspace2" {
			t.Fatalf("expected current row, got %+v", got)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := repo.Update("test000", "admin456", "", nil); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestTestsRepository_Delete(t *testing.T) {
	repo := newTestsRepo(t)
	seeded, err := repo.Create("admin123", "workspace1", []string{"maths"})
	if err != nil {
		t.Fatalf("failed to seed test: %v", err)
	}

	if err := repo.Delete(""); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if err := repo.Delete(seeded.TestID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindOneByID(seeded.TestID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected row gone, got %v", err)
	}
}
