package response

import (
	"time"

	"salesdash/internal/domain/entities"
	"salesdash/internal/usecase"
)

type ProjectResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Value          float64   `json:"value"`
	Description    string    `json:"description"`
	Tag            string    `json:"tag"`
	EstimatedHours float64   `json:"estimatedHours"`
	AttachedFile   string    `json:"attachedFile,omitempty"`
	Icon           string    `json:"icon,omitempty"`
	TeamID         string    `json:"teamId,omitempty"`
	TeamName       string    `json:"teamName,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// FromProject resolves the weak team reference for display. An unknown team
// id renders without a team name rather than failing.
func FromProject(p entities.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:             p.ID,
		Title:          p.Title,
		Value:          p.Value,
		Description:    p.Description,
		Tag:            p.Tag,
		EstimatedHours: p.EstimatedHours,
		AttachedFile:   p.AttachedFile,
		Icon:           p.Icon,
		TeamID:         p.TeamID,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
	}
	if team, ok := entities.TeamByID(p.TeamID); ok {
		resp.TeamName = team.Name
	}
	return resp
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int               `json:"total"`
}

func FromProjects(projects []entities.Project) ProjectListResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return ProjectListResponse{Projects: out, Total: len(out)}
}

// ProjectDashboardResponse carries the project KPIs with formatted totals.
type ProjectDashboardResponse struct {
	usecase.ProjectDashboard
	FormattedTotalValue string `json:"formattedTotalValue"`
}

func FromProjectDashboard(d usecase.ProjectDashboard) ProjectDashboardResponse {
	return ProjectDashboardResponse{
		ProjectDashboard:    d,
		FormattedTotalValue: FormatCurrency(d.TotalValue),
	}
}
