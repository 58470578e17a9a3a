package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error
	CountByAgent(ctx context.Context, agentID uuid.UUID) (int, error)
}

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO properties (
            id, agent_id, title, property_type, location,
            bedrooms, size, size_unit, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW())
        ON CONFLICT (id) DO NOTHING
    `, p.ID, p.AgentID, p.Title, p.PropertyType, p.Location, p.Bedrooms, p.Size, p.SizeUnit)
	return err
}

func (r *propertyRepo) CountByAgent(ctx context.Context, agentID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM properties WHERE agent_id=$1`, agentID).Scan(&n)
	return n, err
}
