package models

// Group is one liguilla group: a label and its roster in sheet order.
type Group struct {
	Label string   `json:"label"`
	Teams []string `json:"teams"`
}

// Has reports whether team belongs to the group roster.
func (g Group) Has(team string) bool {
	for _, t := range g.Teams {
		if t == team {
			return true
		}
	}
	return false
}
