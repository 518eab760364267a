package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"salesdash/internal/domain/entities"
	"salesdash/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrInvalidTitle     = errors.New("invalid project title")
	ErrInvalidValue     = errors.New("invalid project value")
	ErrInvalidHours     = errors.New("invalid estimated hours")
	ErrInvalidProjectID = errors.New("invalid project id")
)

// CreateProjectInput is the domain command for authoring a project.
type CreateProjectInput struct {
	Title          string
	Value          float64
	Description    string
	Tag            string
	EstimatedHours float64
	AttachedFile   string
	Icon           string
}

// TeamWorkload summarizes one team's share of the project portfolio.
type TeamWorkload struct {
	TeamID        string  `json:"teamId"`
	Name          string  `json:"name"`
	TotalProjects int     `json:"totalProjects"`
	TotalHours    float64 `json:"totalHours"`
	TotalValue    float64 `json:"totalValue"`
}

// ProjectDashboard is the project-side KPI summary.
type ProjectDashboard struct {
	TotalValue       float64        `json:"totalValue"`
	TotalProjects    int            `json:"totalProjects"`
	TotalHours       float64        `json:"totalHours"`
	AssignedProjects int            `json:"assignedProjects"`
	TeamWorkload     []TeamWorkload `json:"teamWorkload"`
}

// IProjectUseCase exposes project authoring and reporting operations.
//
// Deleting an unknown id is a silent no-op, matching the store primitive;
// assigning a team to an unknown project surfaces ErrProjectNotFound so the
// HTTP edge can answer 404 instead of masking the miss.
type IProjectUseCase interface {
	Create(ctx context.Context, input CreateProjectInput) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
	Delete(ctx context.Context, id string) error
	AssignTeam(ctx context.Context, projectID, teamID string) (entities.Project, error)
	Dashboard(ctx context.Context) (ProjectDashboard, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) Create(ctx context.Context, input CreateProjectInput) (entities.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return entities.Project{}, ErrInvalidTitle
	}
	if input.Value < 0 {
		return entities.Project{}, ErrInvalidValue
	}
	if input.EstimatedHours < 0 {
		return entities.Project{}, ErrInvalidHours
	}

	p := entities.Project{
		ID:             uuid.NewString(),
		Title:          title,
		Value:          input.Value,
		Description:    input.Description,
		Tag:            input.Tag,
		EstimatedHours: input.EstimatedHours,
		AttachedFile:   input.AttachedFile,
		Icon:           input.Icon,
		Status:         entities.ProjectStatusPending,
		CreatedAt:      time.Now().UTC(),
	}
	if err := u.repo.Save(ctx, p); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidProjectID
	}
	return u.repo.Delete(ctx, id)
}

func (u *ProjectUseCase) AssignTeam(ctx context.Context, projectID, teamID string) (entities.Project, error) {
	if strings.TrimSpace(projectID) == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if _, ok := entities.TeamByID(teamID); !ok {
		return entities.Project{}, ErrTeamNotFound
	}

	updated, err := u.repo.AssignTeam(ctx, projectID, teamID)
	if err != nil {
		return entities.Project{}, err
	}
	if !updated {
		return entities.Project{}, ErrProjectNotFound
	}

	projects, err := u.repo.List(ctx)
	if err != nil {
		return entities.Project{}, err
	}
	for _, p := range projects {
		if p.ID == projectID {
			return p, nil
		}
	}
	return entities.Project{}, ErrProjectNotFound
}

func (u *ProjectUseCase) Dashboard(ctx context.Context) (ProjectDashboard, error) {
	projects, err := u.repo.List(ctx)
	if err != nil {
		return ProjectDashboard{}, err
	}

	dash := ProjectDashboard{TotalProjects: len(projects)}
	for _, p := range projects {
		dash.TotalValue += p.Value
		dash.TotalHours += p.EstimatedHours
		if p.TeamID != "" {
			dash.AssignedProjects++
		}
	}

	for _, team := range entities.Teams {
		w := TeamWorkload{TeamID: team.ID, Name: strings.TrimSuffix(team.Name, " Team")}
		for _, p := range projects {
			if p.TeamID != team.ID {
				continue
			}
			w.TotalProjects++
			w.TotalHours += p.EstimatedHours
			w.TotalValue += p.Value
		}
		dash.TeamWorkload = append(dash.TeamWorkload, w)
	}
	return dash, nil
}
