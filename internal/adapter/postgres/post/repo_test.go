package post_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/alpha-backend/internal/adapter/postgres/post"
	"github.com/heartmarshall/alpha-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/alpha-backend/internal/domain"
)

// Tests share one database, so they run sequentially and use unique slugs.
// TestList truncates the posts table to get a deterministic dataset.

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*post.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return post.New(pool), pool
}

// buildPost creates a minimal domain.Post suitable for Create.
func buildPost(slug string) *domain.Post {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Post{
		ID:        uuid.New(),
		Name:      "Post " + slug,
		Slug:      slug,
		Status:    domain.StatusDraft,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func uniqueSlug(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

func TestCreateAndGetByID(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	p := buildPost(uniqueSlug("roundtrip"))

	created, err := repo.Create(ctx, p)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != p.ID {
		t.Errorf("id: got %v, want %v", created.ID, p.ID)
	}

	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Slug != p.Slug || got.Name != p.Name {
		t.Errorf("got %+v, want slug=%q name=%q", got, p.Slug, p.Name)
	}
	if got.Status != domain.StatusDraft || got.Official || !got.Active {
		t.Errorf("defaults not persisted: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error: got %v, want ErrNotFound", err)
	}
}

func TestCreate_DuplicateSlug(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	slug := uniqueSlug("dup")
	if _, err := repo.Create(ctx, buildPost(slug)); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := repo.Create(ctx, buildPost(slug))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("error: got %v, want ErrAlreadyExists", err)
	}
}

func TestExistsBySlug(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	slug := uniqueSlug("exists")
	testhelper.SeedPost(t, pool, slug)

	exists, err := repo.ExistsBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("ExistsBySlug: %v", err)
	}
	if !exists {
		t.Error("expected slug to exist")
	}

	exists, err = repo.ExistsBySlug(ctx, uniqueSlug("missing"))
	if err != nil {
		t.Fatalf("ExistsBySlug: %v", err)
	}
	if exists {
		t.Error("expected slug to be free")
	}
}

func TestUpdate_Partial(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedPost(t, pool, uniqueSlug("partial"))

	name := "Renamed"
	if err := repo.Update(ctx, seeded.ID, domain.PostUpdateParams{Name: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("name: got %q, want %q", got.Name, "Renamed")
	}
	if got.Slug != seeded.Slug {
		t.Errorf("slug must be untouched: got %q, want %q", got.Slug, seeded.Slug)
	}
	if !got.UpdatedAt.After(seeded.UpdatedAt) {
		t.Errorf("updated_at not bumped: %v <= %v", got.UpdatedAt, seeded.UpdatedAt)
	}
}

func TestUpdate_StatusAndOfficial(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedPost(t, pool, uniqueSlug("flags"))

	public := domain.StatusPublic
	official := true
	err := repo.Update(ctx, seeded.ID, domain.PostUpdateParams{
		Status:   &public,
		Official: &official,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != domain.StatusPublic || !got.Official {
		t.Errorf("flags not persisted: %+v", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, _ := newRepo(t)

	name := "x"
	err := repo.Update(context.Background(), uuid.New(), domain.PostUpdateParams{Name: &name})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error: got %v, want ErrNotFound", err)
	}
}

func TestUpdate_SlugCollision(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	taken := testhelper.SeedPost(t, pool, uniqueSlug("taken"))
	victim := testhelper.SeedPost(t, pool, uniqueSlug("victim"))

	err := repo.Update(ctx, victim.ID, domain.PostUpdateParams{Slug: &taken.Slug})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("error: got %v, want ErrAlreadyExists", err)
	}
}

func TestDelete(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedPost(t, pool, uniqueSlug("delete"))

	if err := repo.Delete(ctx, seeded.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.GetByID(ctx, seeded.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("post still readable after delete: %v", err)
	}

	if err := repo.Delete(ctx, seeded.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	repo, pool := newRepo(t)
	ctx := context.Background()

	if _, err := pool.Exec(ctx, `TRUNCATE posts`); err != nil {
		t.Fatalf("truncate posts: %v", err)
	}

	// Fixed IDs give a deterministic cursor order; created_at spacing gives
	// a deterministic sort order (newest first).
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mkID := func(n int) uuid.UUID {
		return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
	}

	seed := func(n int, status domain.PostStatus, official, active bool) domain.Post {
		return testhelper.SeedPostRecord(t, pool, domain.Post{
			ID:        mkID(n),
			Name:      fmt.Sprintf("Post %d", n),
			Slug:      fmt.Sprintf("post-%d", n),
			Status:    status,
			Official:  official,
			Active:    active,
			CreatedAt: base.Add(time.Duration(n) * time.Minute),
			UpdatedAt: base.Add(time.Duration(n) * time.Minute),
		})
	}

	seed(1, domain.StatusDraft, false, true)
	seed(2, domain.StatusPublic, true, true)
	seed(3, domain.StatusPublic, false, true)
	seed(4, domain.StatusPrivate, false, true)
	seed(5, domain.StatusDraft, false, false) // inactive

	t.Run("active only, newest first", func(t *testing.T) {
		got, err := repo.List(ctx, domain.PostFilter{Active: true, Limit: 10})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("count: got %d, want 4", len(got))
		}
		if got[0].ID != mkID(4) || got[3].ID != mkID(1) {
			t.Errorf("order: got %v..%v, want newest first", got[0].ID, got[3].ID)
		}
	})

	t.Run("inactive", func(t *testing.T) {
		got, err := repo.List(ctx, domain.PostFilter{Active: false, Limit: 10})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 1 || got[0].ID != mkID(5) {
			t.Errorf("got %v, want only post 5", got)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		public := domain.StatusPublic
		got, err := repo.List(ctx, domain.PostFilter{Active: true, Status: &public, Limit: 10})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("count: got %d, want 2", len(got))
		}
	})

	t.Run("official filter", func(t *testing.T) {
		official := true
		got, err := repo.List(ctx, domain.PostFilter{Active: true, Official: &official, Limit: 10})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 1 || got[0].ID != mkID(2) {
			t.Errorf("got %v, want only post 2", got)
		}
	})

	t.Run("limit", func(t *testing.T) {
		got, err := repo.List(ctx, domain.PostFilter{Active: true, Limit: 2})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("count: got %d, want 2", len(got))
		}
	})

	t.Run("starting after cursor", func(t *testing.T) {
		cursor := mkID(2)
		got, err := repo.List(ctx, domain.PostFilter{Active: true, StartingAfter: &cursor, Limit: 10})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("count: got %d, want 2 (ids 3 and 4)", len(got))
		}
		for _, p := range got {
			if p.ID == mkID(1) || p.ID == mkID(2) {
				t.Errorf("unexpected id %v at or below cursor", p.ID)
			}
		}
	})

	t.Run("ending before cursor", func(t *testing.T) {
		cursor := mkID(3)
		got, err := repo.List(ctx, domain.PostFilter{Active: true, EndingBefore: &cursor, Limit: 10})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("count: got %d, want 2 (ids 1 and 2)", len(got))
		}
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		missing := domain.StatusPrivate
		got, err := repo.List(ctx, domain.PostFilter{Active: false, Status: &missing, Limit: 10})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if got == nil {
			t.Error("expected empty slice, got nil")
		}
		if len(got) != 0 {
			t.Errorf("count: got %d, want 0", len(got))
		}
	})
}
