package entities

import "time"

// ProjectStatus represents the lifecycle of an internally authored project.
//
// A project is created as "pending" and flips to "assigned" the moment a team
// is attached; the two fields are only ever written together by the assign
// operation, never independently.

type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusAssigned   ProjectStatus = "assigned"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Project is a locally authored record persisted in the project slot.
//
// Storage model:
//   - the whole collection lives as one JSON-encoded array in a single
//     string-keyed slot; every mutation rewrites the full array.
//
// TeamID is a weak reference into the static team catalog; it may be empty
// and is never validated against the catalog at the storage layer.
type Project struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Value          float64       `json:"value"`
	Description    string        `json:"description"`
	Tag            string        `json:"tag"`
	EstimatedHours float64       `json:"estimatedHours"`
	AttachedFile   string        `json:"attachedFile,omitempty"`
	Icon           string        `json:"icon,omitempty"`
	TeamID         string        `json:"teamId,omitempty"`
	Status         ProjectStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
}
