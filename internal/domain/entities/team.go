package entities

// Team is static reference data: never created, mutated, or deleted at
// runtime, only looked up by id.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	MemberCount int    `json:"memberCount"`
}

// Teams is the fixed team catalog.
var Teams = []Team{
	{ID: "team-1", Name: "Development Team", Color: "#3b82f6", MemberCount: 8},
	{ID: "team-2", Name: "Design Team", Color: "#8b5cf6", MemberCount: 5},
	{ID: "team-3", Name: "Marketing Team", Color: "#10b981", MemberCount: 6},
	{ID: "team-4", Name: "Operations Team", Color: "#f59e0b", MemberCount: 7},
}

// TeamByID returns the catalog entry for id, or false when the id is outside
// the catalog.
func TeamByID(id string) (Team, bool) {
	for _, t := range Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}
