package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/leagueops/league-manager/internal/domain/roster"
	qb "github.com/leagueops/league-manager/internal/platform/querybuilder"
)

const memberSelectColumns = "p.id, p.team_id, p.name, p.birth_date, p.nationality, p.role_kind, " +
	"pr.position, pr.shirt_number, cr.coach_type, cr.experience_years"

const memberJoin = "persons p " +
	"LEFT JOIN player_roles pr ON pr.person_id = p.id AND pr.deleted_at IS NULL " +
	"LEFT JOIN coach_roles cr ON cr.person_id = p.id AND cr.deleted_at IS NULL"

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// Create writes the person row and its role row in one transaction.
func (r *RosterRepository) Create(ctx context.Context, m roster.Member) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create member tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	query, args, err := qb.InsertModel("persons", personTableModel{
		ID:          m.ID,
		TeamID:      m.TeamID,
		Name:        m.Name,
		BirthDate:   m.BirthDate,
		Nationality: m.Nationality,
		RoleKind:    string(m.Kind),
		CreatedAt:   now,
		UpdatedAt:   now,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert person query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert person: %w", err)
	}

	if err := insertRole(ctx, tx, m); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create member tx: %w", err)
	}
	return nil
}

// Update rewrites both rows. The role row is replaced rather than updated in
// place so a partial write can never survive the transaction.
func (r *RosterRepository) Update(ctx context.Context, m roster.Member) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update member tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := qb.Update("persons").
		Set("team_id", m.TeamID).
		Set("name", m.Name).
		Set("birth_date", m.BirthDate).
		Set("nationality", m.Nationality).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", m.ID), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update person query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update person: %w", err)
	}

	if err := softDeleteRoles(ctx, tx, m.ID); err != nil {
		return err
	}
	if err := insertRole(ctx, tx, m); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update member tx: %w", err)
	}
	return nil
}

func (r *RosterRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete member tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := qb.Update("persons").
		SetExpr("deleted_at", "NOW()").
		Where(qb.Eq("id", id), qb.IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete person query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}

	if err := softDeleteRoles(ctx, tx, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete member tx: %w", err)
	}
	return nil
}

func (r *RosterRepository) GetByID(ctx context.Context, id string) (roster.Member, bool, error) {
	query, args, err := qb.Select(memberSelectColumns).
		From(memberJoin).
		Where(qb.Eq("p.id", id), qb.IsNull("p.deleted_at")).
		ToSQL()
	if err != nil {
		return roster.Member{}, false, fmt.Errorf("build select member query: %w", err)
	}

	var row memberRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return roster.Member{}, false, nil
		}
		return roster.Member{}, false, fmt.Errorf("select member: %w", err)
	}
	return memberFromRow(row), true, nil
}

func (r *RosterRepository) ListPlayersByTeam(ctx context.Context, teamID string) ([]roster.Member, error) {
	return r.listByTeam(ctx, teamID, roster.RolePlayer)
}

func (r *RosterRepository) ListCoachesByTeam(ctx context.Context, teamID string) ([]roster.Member, error) {
	return r.listByTeam(ctx, teamID, roster.RoleCoach)
}

func (r *RosterRepository) listByTeam(ctx context.Context, teamID string, kind roster.RoleKind) ([]roster.Member, error) {
	query, args, err := qb.Select(memberSelectColumns).
		From(memberJoin).
		Where(
			qb.Eq("p.team_id", teamID),
			qb.Eq("p.role_kind", string(kind)),
			qb.IsNull("p.deleted_at"),
		).
		OrderBy("p.name", "p.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list members query: %w", err)
	}

	var rows []memberRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	out := make([]roster.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, memberFromRow(row))
	}
	return out, nil
}

func insertRole(ctx context.Context, tx *sqlx.Tx, m roster.Member) error {
	now := time.Now().UTC()
	switch m.Kind {
	case roster.RolePlayer:
		query, args, err := qb.InsertInto("player_roles").
			Columns("person_id", "position", "shirt_number", "created_at", "updated_at").
			Values(m.ID, string(m.Player.Position), m.Player.ShirtNumber, now, now).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build insert player role query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert player role: %w", err)
		}
	case roster.RoleCoach:
		query, args, err := qb.InsertInto("coach_roles").
			Columns("person_id", "coach_type", "experience_years", "created_at", "updated_at").
			Values(m.ID, string(m.Coach.Type), m.Coach.ExperienceYears, now, now).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build insert coach role query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert coach role: %w", err)
		}
	default:
		return fmt.Errorf("unknown role kind %q", m.Kind)
	}
	return nil
}

func softDeleteRoles(ctx context.Context, tx *sqlx.Tx, personID string) error {
	for _, table := range []string{"player_roles", "coach_roles"} {
		query, args, err := qb.Update(table).
			SetExpr("deleted_at", "NOW()").
			Where(qb.Eq("person_id", personID), qb.IsNull("deleted_at")).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build clear %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

func memberFromRow(row memberRow) roster.Member {
	m := roster.Member{
		ID:          row.ID,
		TeamID:      row.TeamID,
		Name:        row.Name,
		BirthDate:   row.BirthDate,
		Nationality: row.Nationality,
		Kind:        roster.RoleKind(row.RoleKind),
	}
	switch m.Kind {
	case roster.RolePlayer:
		m.Player = &roster.PlayerRole{
			Position:    roster.Position(row.Position.String),
			ShirtNumber: int(row.ShirtNumber.Int64),
		}
	case roster.RoleCoach:
		m.Coach = &roster.CoachRole{
			Type:            roster.CoachType(row.CoachType.String),
			ExperienceYears: int(row.ExperienceYears.Int64),
		}
	}
	return m
}
