package usecase

import (
	"context"
	"errors"
	"testing"

	"salesdash/internal/domain/entities"
	mock_interfaces "salesdash/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTeamUseCase_List(t *testing.T) {
	uc := NewTeamUseCase(nil)
	teams := uc.List()
	if len(teams) != len(entities.Teams) {
		t.Fatalf("expected full catalog, got %d teams", len(teams))
	}
}

func TestTeamUseCase_GetByID(t *testing.T) {
	uc := NewTeamUseCase(nil)

	t.Run("known team", func(t *testing.T) {
		team, err := uc.GetByID("team-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if team.Name != "Design Team" {
			t.Fatalf("unexpected team: %+v", team)
		}
	})

	t.Run("unknown team", func(t *testing.T) {
		if _, err := uc.GetByID("team-99"); !errors.Is(err, ErrTeamNotFound) {
			t.Fatalf("expected ErrTeamNotFound, got %v", err)
		}
	})
}

func TestTeamUseCase_Workload(t *testing.T) {
	t.Run("sums the team's projects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewTeamUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Project{
			{ID: "p-1", TeamID: "team-1", Value: 100, EstimatedHours: 8},
			{ID: "p-2", TeamID: "team-2", Value: 999, EstimatedHours: 99},
			{ID: "p-3", TeamID: "team-1", Value: 50, EstimatedHours: 2},
		}, nil)

		w, err := uc.Workload(context.Background(), "team-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.TotalProjects != 2 || w.TotalValue != 150 || w.TotalHours != 10 {
			t.Fatalf("unexpected workload: %+v", w)
		}
		if w.Name != "Development Team" {
			t.Fatalf("unexpected name: %q", w.Name)
		}
	})

	t.Run("unknown team skips the store", func(t *testing.T) {
		uc := NewTeamUseCase(nil)
		if _, err := uc.Workload(context.Background(), "nope"); !errors.Is(err, ErrTeamNotFound) {
			t.Fatalf("expected ErrTeamNotFound, got %v", err)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewTeamUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("store"))

		if _, err := uc.Workload(context.Background(), "team-1"); err == nil {
			t.Fatal("expected error")
		}
	})
}
