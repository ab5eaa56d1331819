package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/urbangis/server/internal/auth"
)

type fakeRepo struct {
	owners  map[string]string
	created []CreateInput
	updated map[string]Patch
	deleted []string
	listed  []Event
	listErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		owners:  map[string]string{},
		updated: map[string]Patch{},
	}
}

func (f *fakeRepo) List(_ context.Context, _ Filters) ([]Event, error) {
	return f.listed, f.listErr
}

func (f *fakeRepo) Create(_ context.Context, createdBy string, input CreateInput) (string, error) {
	f.created = append(f.created, input)
	id := "evt-1"
	f.owners[id] = createdBy
	return id, nil
}

func (f *fakeRepo) GetOwner(_ context.Context, id string) (string, error) {
	owner, ok := f.owners[id]
	if !ok {
		return "", ErrNotFound
	}
	return owner, nil
}

func (f *fakeRepo) Update(_ context.Context, id string, patch Patch) error {
	f.updated[id] = patch
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.owners[id]; !ok {
		return ErrNotFound
	}
	delete(f.owners, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func validInput() CreateInput {
	start := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	lon, lat := 32.8597, 39.9228
	return CreateInput{
		Title:     "Workshop",
		Category:  "workshop",
		StartTime: &start,
		Lon:       &lon,
		Lat:       &lat,
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc := NewService(newFakeRepo())
	actor := auth.Identity{ID: "user-a", Role: "organizer"}

	cases := map[string]func(*CreateInput){
		"missing title":      func(in *CreateInput) { in.Title = "" },
		"missing category":   func(in *CreateInput) { in.Category = "" },
		"missing start_time": func(in *CreateInput) { in.StartTime = nil },
		"missing lon":        func(in *CreateInput) { in.Lon = nil },
		"missing lat":        func(in *CreateInput) { in.Lat = nil },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := validInput()
			mutate(&input)
			_, err := svc.Create(context.Background(), actor, input)
			require.Error(t, err)
			require.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateAssignsOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), auth.Identity{ID: "user-a", Role: "organizer"}, validInput())
	require.NoError(t, err)
	require.Equal(t, "evt-1", id)
	require.Equal(t, "user-a", repo.owners[id])
}

func TestUpdateOwnership(t *testing.T) {
	repo := newFakeRepo()
	repo.owners["evt-1"] = "user-a"
	svc := NewService(repo)
	title := "renamed"
	patch := Patch{Title: &title}

	err := svc.Update(context.Background(), auth.Identity{ID: "user-b", Role: "organizer"}, "evt-1", patch)
	require.ErrorIs(t, err, ErrForbidden)

	err = svc.Update(context.Background(), auth.Identity{ID: "user-a", Role: "organizer"}, "evt-1", patch)
	require.NoError(t, err)

	err = svc.Update(context.Background(), auth.Identity{ID: "user-c", Role: "admin"}, "evt-1", patch)
	require.NoError(t, err)
}

func TestUpdateUnknownEvent(t *testing.T) {
	svc := NewService(newFakeRepo())
	title := "renamed"
	err := svc.Update(context.Background(), auth.Identity{ID: "user-a", Role: "admin"}, "missing", Patch{Title: &title})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateEmptyPatch(t *testing.T) {
	repo := newFakeRepo()
	repo.owners["evt-1"] = "user-a"
	svc := NewService(repo)

	err := svc.Update(context.Background(), auth.Identity{ID: "user-a", Role: "organizer"}, "evt-1", Patch{})
	require.ErrorIs(t, err, ErrNoFields)
	require.Empty(t, repo.updated)

	// a lone lon is a geometry no-op, so the patch is still empty
	lon := 32.0
	err = svc.Update(context.Background(), auth.Identity{ID: "user-a", Role: "organizer"}, "evt-1", Patch{Lon: &lon})
	require.ErrorIs(t, err, ErrNoFields)
}

func TestDeleteOwnership(t *testing.T) {
	repo := newFakeRepo()
	repo.owners["evt-1"] = "user-a"
	svc := NewService(repo)

	err := svc.Delete(context.Background(), auth.Identity{ID: "user-b", Role: "organizer"}, "evt-1")
	require.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(context.Background(), auth.Identity{ID: "user-a", Role: "organizer"}, "evt-1")
	require.NoError(t, err)

	// second delete finds nothing: deletion is not idempotent
	err = svc.Delete(context.Background(), auth.Identity{ID: "user-a", Role: "organizer"}, "evt-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListWrapsRepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("boom")
	svc := NewService(repo)

	_, err := svc.List(context.Background(), Filters{})
	require.Error(t, err)
}
