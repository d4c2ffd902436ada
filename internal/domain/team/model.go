package team

import "fmt"

// Team is one club in the league.
type Team struct {
	ID          string
	Name        string
	Short       string
	FoundedYear int
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	return nil
}
