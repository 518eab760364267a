package request

import "strings"

// CreateProjectRequest is the payload submitted by the new-project form.
// AttachedFile carries the uploaded file's handle/name, not its bytes.
type CreateProjectRequest struct {
	Title          string  `json:"title" binding:"required"`
	Value          float64 `json:"value"`
	Description    string  `json:"description"`
	Tag            string  `json:"tag"`
	EstimatedHours float64 `json:"estimatedHours"`
	AttachedFile   string  `json:"attachedFile"`
	Icon           string  `json:"icon"`
}

// AssignTeamRequest is the payload for attaching a team to a project.
type AssignTeamRequest struct {
	TeamID string `json:"teamId" binding:"required"`
}

func (r AssignTeamRequest) ResolveTeamID() string {
	return strings.TrimSpace(r.TeamID)
}
