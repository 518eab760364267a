package repository

import (
	"context"
	"encoding/json"

	"salesdash/internal/domain/entities"
	"salesdash/internal/usecase/interfaces"
)

const defaultProjectsSlotKey = "roadmap_projects"

// ProjectSlotRepository keeps the whole project collection as one
// JSON-encoded array in a single slot.
//
// Every mutation reads the array, rewrites it and stores it back whole, so
// the store never exposes a partially written collection. Lookup misses on
// Delete and AssignTeam are deliberate no-ops at this layer; AssignTeam
// reports whether anything changed so callers can decide to surface a miss.
//
// There is no concurrent-writer coordination: the slot assumes a single
// reader/writer at a time and the last write wins.

type ProjectSlotRepository struct {
	store   interfaces.ISlotStore
	slotKey string
}

var _ interfaces.IProjectRepository = (*ProjectSlotRepository)(nil)

func NewProjectSlotRepository(store interfaces.ISlotStore) *ProjectSlotRepository {
	return &ProjectSlotRepository{
		store:   store,
		slotKey: getenvDefault("PROJECTS_SLOT_KEY", defaultProjectsSlotKey),
	}
}

// List returns every stored project, or an empty list when the slot has
// never been written.
func (r *ProjectSlotRepository) List(ctx context.Context) ([]entities.Project, error) {
	payload, found, err := r.store.Get(ctx, r.slotKey)
	if err != nil {
		return nil, err
	}
	if !found || payload == "" {
		return []entities.Project{}, nil
	}

	var projects []entities.Project
	if err := json.Unmarshal([]byte(payload), &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Save upserts by id: an existing entry is replaced in place, a new one is
// appended.
func (r *ProjectSlotRepository) Save(ctx context.Context, p entities.Project) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range projects {
		if projects[i].ID == p.ID {
			projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append(projects, p)
	}
	return r.write(ctx, projects)
}

// Delete removes the matching entry. An absent id leaves the collection
// untouched and is not an error.
func (r *ProjectSlotRepository) Delete(ctx context.Context, id string) error {
	projects, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.write(ctx, kept)
}

// AssignTeam sets the team and forces status "assigned" in the same write.
// A repeated call with a different team overwrites the team id; status
// stays "assigned". Returns false when the project id is absent.
func (r *ProjectSlotRepository) AssignTeam(ctx context.Context, projectID, teamID string) (bool, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return false, err
	}

	for i := range projects {
		if projects[i].ID != projectID {
			continue
		}
		projects[i].TeamID = teamID
		projects[i].Status = entities.ProjectStatusAssigned
		return true, r.write(ctx, projects)
	}
	return false, nil
}

func (r *ProjectSlotRepository) write(ctx context.Context, projects []entities.Project) error {
	payload, err := json.Marshal(projects)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.slotKey, string(payload))
}
