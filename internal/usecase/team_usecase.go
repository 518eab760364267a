package usecase

import (
	"context"

	"salesdash/internal/domain/entities"
	"salesdash/internal/usecase/interfaces"
)

// ITeamUseCase exposes the static team catalog and per-team workload.
type ITeamUseCase interface {
	List() []entities.Team
	GetByID(id string) (entities.Team, error)
	Workload(ctx context.Context, teamID string) (TeamWorkload, error)
}

type TeamUseCase struct {
	projects interfaces.IProjectRepository
}

var _ ITeamUseCase = (*TeamUseCase)(nil)

func NewTeamUseCase(projects interfaces.IProjectRepository) *TeamUseCase {
	return &TeamUseCase{projects: projects}
}

func (u *TeamUseCase) List() []entities.Team {
	return entities.Teams
}

func (u *TeamUseCase) GetByID(id string) (entities.Team, error) {
	team, ok := entities.TeamByID(id)
	if !ok {
		return entities.Team{}, ErrTeamNotFound
	}
	return team, nil
}

func (u *TeamUseCase) Workload(ctx context.Context, teamID string) (TeamWorkload, error) {
	team, ok := entities.TeamByID(teamID)
	if !ok {
		return TeamWorkload{}, ErrTeamNotFound
	}

	projects, err := u.projects.List(ctx)
	if err != nil {
		return TeamWorkload{}, err
	}

	w := TeamWorkload{TeamID: team.ID, Name: team.Name}
	for _, p := range projects {
		if p.TeamID != team.ID {
			continue
		}
		w.TotalProjects++
		w.TotalHours += p.EstimatedHours
		w.TotalValue += p.Value
	}
	return w, nil
}
