package interfaces

import (
	"context"
	"salesdash/internal/domain/entities"
)

//go:generate mockgen -source=project_repository_interface.go -destination=mocks/project_repository_mock.go -package=mock_interfaces

// IProjectRepository abstracts slot persistence for Project.
//
// Lookup misses on Delete and AssignTeam are silent no-ops at this layer;
// AssignTeam reports whether a project was actually updated so callers can
// surface not-found at the API edge.
type IProjectRepository interface {
	List(ctx context.Context) ([]entities.Project, error)
	Save(ctx context.Context, p entities.Project) error
	Delete(ctx context.Context, id string) error
	AssignTeam(ctx context.Context, projectID, teamID string) (updated bool, err error)
}
