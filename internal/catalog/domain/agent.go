package domain

// Agent represents a brokerage employee that listings are assigned to.
type Agent struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Photo           string
	Bio             string
	License         string
	YearsExperience int
	Specializations []string
	Rating          float64
	ReviewCount     int
}

// Clone returns a deep copy of the agent.
func (a Agent) Clone() Agent {
	out := a
	out.Specializations = append([]string{}, a.Specializations...)
	return out
}
