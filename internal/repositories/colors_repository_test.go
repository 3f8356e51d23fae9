package repositories

import (
	"errors"
	"strings"
	"testing"

	"croner/backend/internal/testhelpers"
)

func newColorsRepo(t *testing.T) *ColorsRepository {
	t.Helper()
	return &ColorsRepository{DB: testhelpers.SetupTestDB(t)}
}

func TestColorsRepository_Create(t *testing.T) {
	repo := newColorsRepo(t)

	t.Run("missing fields", func(t *testing.T) {
		for _, args := range [][3]string{
			{"", "guest1", "#ff0000"},
			{"workspace1", "", "#ff0000"},
			{"workspace1", "guest1", ""},
		} {
			if _, err := repo.Create(args[0], args[1], args[2]); !errors.Is(err, ErrMissingInput) {
				t.Fatalf("expected ErrMissingInput for %v, got %v", args, err)
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		color, err := repo.Create("workspace1", "guest1", "#ff0000")
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if !strings.HasPrefix(color.ColorID, "color") {
			t.Fatalf("expected color prefix, got %q", color.ColorID)
		}
		if color.Hex != "#ff0000" {
			t.Fatalf("expected hex persisted, got %q", color.Hex)
		}
	})
}

func TestColorsRepository_Find(t *testing.T) {
	repo := newColorsRepo(t)
	seeded, err := repo.Create("workspace1", "guest1", "#00ff00")
	if err != nil {
		t.Fatalf("failed to seed color: %v", err)
	}

	t.Run("by hex", func(t *testing.T) {
		got, err := repo.FindOneByHex("#00ff00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ColorID != seeded.ColorID {
			t.Fatalf("expected %q, got %q", seeded.ColorID, got.ColorID)
		}
	})

	t.Run("by hex not found", func(t *testing.T) {
		if _, err := repo.FindOneByHex("#123456"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("by workspace", func(t *testing.T) {
		colors, err := repo.FindAllByWorkspace("workspace1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(colors) != 1 {
			t.Fatalf("expected 1 color, got %d", len(colors))
		}
	})

	t.Run("by workspace with no matches is empty", func(t *testing.T) {
		colors, err := repo.FindAllByWorkspace("workspace999")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(colors) != 0 {
			t.Fatalf("expected empty result, got %d", len(colors))
		}
	})
}

func TestColorsRepository_Update(t *testing.T) {
	repo := newColorsRepo(t)
	seeded, err := repo.Create("workspace1", "guest1", "#0000ff")
	if err != nil {
		t.Fatalf("failed to seed color: %v", err)
	}

	t.Run("partial update preserves other columns", func(t *testing.T) {
		got, err := repo.Update(seeded.ColorID, "", "", "#abcdef")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Hex != "#abcdef" {
			t.Fatalf("expected hex updated, got %q", got.Hex)
		}
		if got.WorkspaceID != "workspace1" || got.GuestID != "guest1" {
			t.Fatalf("expected other columns preserved, got %+v", got)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, err := repo.Update("color000", "", "", "#abcdef"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestColorsRepository_Delete(t *testing.T) {
	repo := newColorsRepo(t)
	seeded, err := repo.Create("workspace1", "guest1", "#ffffff")
	if err != nil {
		t.Fatalf("failed to seed color: %v", err)
	}

	if err := repo.Delete(""); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if err := repo.Delete(seeded.ColorID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(seeded.ColorID); err != nil {
		t.Fatalf("expected repeated delete to succeed, got %v", err)
	}
}
