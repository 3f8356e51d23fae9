package repositories

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"croner/backend/internal/testhelpers"
)

func newWorkspacesRepo(t *testing.T) *WorkspacesRepository {
	t.Helper()
	return &WorkspacesRepository{DB: testhelpers.SetupTestDB(t)}
}

func TestWorkspacesRepository_Create(t *testing.T) {
	repo := newWorkspacesRepo(t)

	t.Run("missing fields", func(t *testing.T) {
		if _, err := repo.Create("", "Alpha"); !errors.Is(err, ErrMissingInput) {
			t.Fatalf("expected ErrMissingInput, got %v", err)
		}
		if _, err := repo.Create("admin123", ""); !errors.Is(err, ErrMissingInput) {
			t.Fatalf("expected ErrMissingInput, got %v", err)
		}
	})

	t.Run("success starts with empty member lists", func(t *testing.T) {
		workspace, err := repo.Create("admin123", "Alpha")
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if !strings.HasPrefix(workspace.WorkspaceID, "workspace") {
			t.Fatalf("expected workspace prefix, got %q", workspace.WorkspaceID)
		}
		if len(workspace.GuestIDs) != 0 || len(workspace.TestIDs) != 0 {
			t.Fatalf("expected empty lists, got %+v", workspace)
		}
	})

	t.Run("duplicate name hits the unique index", func(t *testing.T) {
		if _, err := repo.Create("admin456", "Alpha"); !errors.Is(err, ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})
}

func TestWorkspacesRepository_Find(t *testing.T) {
	repo := newWorkspacesRepo(t)
	seeded, err := repo.Create("admin123", "Beta")
	if err != nil {
		t.Fatalf("failed to seed workspace: %v", err)
	}

	t.Run("by name", func(t *testing.T) {
		got, err := repo.FindOneByName("Beta")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.WorkspaceID != seeded.WorkspaceID {
			t.Fatalf("expected %q, got %q", seeded.WorkspaceID, got.WorkspaceID)
		}
	})

	t.Run("by name missing input", func(t *testing.T) {
		if _, err := repo.FindOneByName(""); !errors.Is(err, ErrMissingInput) {
			t.Fatalf("expected ErrMissingInput, got %v", err)
		}
	})

	t.Run("by id not found", func(t *testing.T) {
		if _, err := repo.FindOneByID("workspace000"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("by admin", func(t *testing.T) {
		workspaces, err := repo.FindAllByAdmin("admin123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(workspaces) != 1 {
			t.Fatalf("expected 1 workspace, got %d", len(workspaces))
		}
	})

	t.Run("by admin with no matches is empty, not an error", func(t *testing.T) {
		workspaces, err := repo.FindAllByAdmin("admin999")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(workspaces) != 0 {
			t.Fatalf("expected empty result, got %d", len(workspaces))
		}
	})
}

func TestWorkspacesRepository_Update(t *testing.T) {
	repo := newWorkspacesRepo(t)
	seeded, err := repo.Create("admin123", "Gamma")
	if err != nil {
		t.Fatalf("failed to seed workspace: %v", err)
	}

	t.Run("replaces member lists", func(t *testing.T) {
		got, err := repo.Update(seeded.WorkspaceID, "", "", []string{"guest1", "guest2"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.GuestIDs, []string{"guest1", "guest2"}) {
			t.Fatalf("expected guest list replaced, got %v", got.GuestIDs)
		}
		if got.Name != "Gamma" || got.AdminID != "admin123" {
			t.Fatalf("expected untouched columns preserved, got %+v", got)
		}
	})

	t.Run("empty lists leave columns unchanged", func(t *testing.T) {
		got, err := repo.Update(seeded.WorkspaceID, "admin456", "", []string{}, []string{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AdminID != "admin456" {
			t.Fatalf("expected admin updated, got %q", got.AdminID)
		}
		if !reflect.DeepEqual(got.GuestIDs, []string{"guest1", "guest2"}) {
			t.Fatalf("expected guest list preserved, got %v", got.GuestIDs)
		}
	})

	t.Run("all fields blank returns current row", func(t *testing.T) {
		got, err := repo.Update(seeded.WorkspaceID, "", "", nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Gamma" {
			t.Fatalf("expected row unchanged, got %+v", got)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		if _, err := repo.Update("", "admin123", "", nil, nil); !errors.Is(err, ErrMissingInput) {
			t.Fatalf("expected ErrMissingInput, got %v", err)
		}
	})
}

func TestWorkspacesRepository_Delete(t *testing.T) {
	repo := newWorkspacesRepo(t)
	seeded, err := repo.Create("admin123", "Delta")
	if err != nil {
		t.Fatalf("failed to seed workspace: %v", err)
	}

	if err := repo.Delete(""); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if err := repo.Delete(seeded.WorkspaceID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(seeded.WorkspaceID); err != nil {
		t.Fatalf("expected repeated delete to succeed, got %v", err)
	}
}
