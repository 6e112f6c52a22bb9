package entity

// TeamMember is one row of the team roster. The roster is read-only for the
// lifetime of a session; it is maintained outside this system.
type TeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Location string `json:"location"`
}
