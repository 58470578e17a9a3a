package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
)

type AgentRepository interface {
	Create(ctx context.Context, agent *models.Agent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Agent, error)
	ListAll(ctx context.Context) ([]*models.Agent, error)
	SearchByArea(ctx context.Context, area string) ([]*models.Agent, error)
	SearchByProperty(ctx context.Context, terms []string) ([]*models.Agent, error)
	Count(ctx context.Context) (int, error)
}

type agentRepo struct {
	db DB
}

func NewAgentRepository(db DB) AgentRepository {
	return &agentRepo{db}
}

func (r *agentRepo) Create(ctx context.Context, a *models.Agent) error {
	q := `
        INSERT INTO agents (
            id, name, email, phone, agency_name, experience_years,
            national_id, address, attachment, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW())
    `
	_, err := r.db.Exec(ctx, q,
		a.ID, a.Name, a.Email, a.Phone, a.AgencyName, a.ExperienceYears,
		a.NationalID, a.Address, a.Attachment,
	)
	return err
}

func (r *agentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Agent, error) {
	q := baseSelectAgent() + " WHERE id=$1"
	row := r.db.QueryRow(ctx, q, id)
	return scanAgent(row)
}

func (r *agentRepo) ListAll(ctx context.Context) ([]*models.Agent, error) {
	q := baseSelectAgent() + " ORDER BY created_at"
	return r.list(ctx, q)
}

// SearchByArea matches the area anywhere in the agent's address.
func (r *agentRepo) SearchByArea(ctx context.Context, area string) ([]*models.Agent, error) {
	q := baseSelectAgent() + ` WHERE address ILIKE $1 ESCAPE '\' ORDER BY created_at`
	return r.list(ctx, q, containsPattern(area))
}

// SearchByProperty returns agents owning at least one property whose
// descriptive text contains every term.
func (r *agentRepo) SearchByProperty(ctx context.Context, terms []string) ([]*models.Agent, error) {
	patterns := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			patterns = append(patterns, containsPattern(t))
		}
	}
	if len(patterns) == 0 {
		return []*models.Agent{}, nil
	}

	q := baseSelectAgent() + `
        WHERE id IN (
            SELECT p.agent_id FROM properties p
            WHERE (p.title || ' ' || p.property_type || ' ' || p.location || ' ' ||
                   p.bedrooms || ' bedroom ' || p.size::text || ' ' || p.size_unit) ILIKE ALL ($1)
        )
        ORDER BY created_at
    `
	return r.list(ctx, q, patterns)
}

func (r *agentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM agents`).Scan(&n)
	return n, err
}

func (r *agentRepo) list(ctx context.Context, q string, args ...any) ([]*models.Agent, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*models.Agent{}
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func baseSelectAgent() string {
	return `
        SELECT
            id, name, email, phone, agency_name, experience_years,
            national_id, address, attachment,
            created_at, updated_at
        FROM agents
    `
}

func scanAgent(row pgx.Row) (*models.Agent, error) {
	var a models.Agent
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.AgencyName, &a.ExperienceYears,
		&a.NationalID, &a.Address, &a.Attachment,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}
