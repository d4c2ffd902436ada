package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Short       string     `db:"short"`
	FoundedYear int        `db:"founded_year"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type personTableModel struct {
	ID          string     `db:"id"`
	TeamID      string     `db:"team_id"`
	Name        string     `db:"name"`
	BirthDate   time.Time  `db:"birth_date"`
	Nationality string     `db:"nationality"`
	RoleKind    string     `db:"role_kind"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

// memberRow is the persons row joined with whichever role row matches its
// kind. The non-matching side comes back NULL.
type memberRow struct {
	ID              string         `db:"id"`
	TeamID          string         `db:"team_id"`
	Name            string         `db:"name"`
	BirthDate       time.Time      `db:"birth_date"`
	Nationality     string         `db:"nationality"`
	RoleKind        string         `db:"role_kind"`
	Position        sql.NullString `db:"position"`
	ShirtNumber     sql.NullInt64  `db:"shirt_number"`
	CoachType       sql.NullString `db:"coach_type"`
	ExperienceYears sql.NullInt64  `db:"experience_years"`
}

type matchTableModel struct {
	ID         string        `db:"id"`
	HomeTeamID string        `db:"home_team_id"`
	AwayTeamID string        `db:"away_team_id"`
	KickoffAt  time.Time     `db:"kickoff_at"`
	HomeGoals  sql.NullInt64 `db:"home_goals"`
	AwayGoals  sql.NullInt64 `db:"away_goals"`
	HomeTeam   string        `db:"home_team"`
	AwayTeam   string        `db:"away_team"`
}

type gameActionTableModel struct {
	ID       string `db:"id"`
	MatchID  string `db:"match_id"`
	PlayerID string `db:"player_id"`
	Kind     string `db:"kind"`
	Minute   int    `db:"minute"`
	Second   int    `db:"second"`
	Seq      int    `db:"seq"`
}

type playerStatTableModel struct {
	MatchID  string `db:"match_id"`
	PlayerID string `db:"player_id"`
	Goals    int    `db:"goals"`
	Assists  int    `db:"assists"`
}

type topScorerRow struct {
	PlayerID   string `db:"player_id"`
	PlayerName string `db:"player_name"`
	TeamName   string `db:"team_name"`
	Goals      int    `db:"goals"`
	Assists    int    `db:"assists"`
}

type matchLineRow struct {
	MatchID   string        `db:"match_id"`
	HomeTeam  string        `db:"home_team"`
	AwayTeam  string        `db:"away_team"`
	HomeGoals sql.NullInt64 `db:"home_goals"`
	AwayGoals sql.NullInt64 `db:"away_goals"`
	KickoffAt time.Time     `db:"kickoff_at"`
	Goals     int           `db:"goals"`
	Assists   int           `db:"assists"`
}
