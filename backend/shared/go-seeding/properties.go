package seeding

import (
	"context"

	"github.com/google/uuid"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-repositories"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// SeedDefaultProperties attaches a few listings to the demo agents so the
// by-property search has something to match. Agents that already have
// listings are left alone.
func SeedDefaultProperties(ctx context.Context, propertyRepo repositories.PropertyRepository) error {
	props := []models.Property{
		{
			ID:           uuid.MustParse("b0000000-0000-4000-8000-000000000001"),
			AgentID:      uuid.MustParse(DefaultAgentAyeshaID),
			Title:        "10 Marla House in DHA",
			PropertyType: "house",
			Location:     "DHA Phase 5, Lahore",
			Bedrooms:     4,
			Size:         10,
			SizeUnit:     "marla",
		},
		{
			ID:           uuid.MustParse("b0000000-0000-4000-8000-000000000002"),
			AgentID:      uuid.MustParse(DefaultAgentBilalID),
			Title:        "Furnished 2 Bedroom Apartment",
			PropertyType: "apartment",
			Location:     "F-7, Islamabad",
			Bedrooms:     2,
			Size:         1100,
			SizeUnit:     "sqft",
		},
		{
			ID:           uuid.MustParse("b0000000-0000-4000-8000-000000000003"),
			AgentID:      uuid.MustParse(DefaultAgentSanaID),
			Title:        "Sea-facing 3 Bedroom Flat",
			PropertyType: "flat",
			Location:     "Clifton, Karachi",
			Bedrooms:     3,
			Size:         1800,
			SizeUnit:     "sqft",
		},
		{
			ID:           uuid.MustParse("b0000000-0000-4000-8000-000000000004"),
			AgentID:      uuid.MustParse(DefaultAgentUsmanID),
			Title:        "1 Kanal Residential Plot",
			PropertyType: "plot",
			Location:     "Bahria Town, Lahore",
			Size:         1,
			SizeUnit:     "kanal",
		},
	}

	for _, p := range props {
		n, err := propertyRepo.CountByAgent(ctx, p.AgentID)
		if err != nil {
			return err
		}
		if n > 0 {
			utils.Logger.Infof("Agent %s already has listings; skipping property seed.", p.AgentID)
			continue
		}
		if err := propertyRepo.Create(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}
