package seeding

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-repositories"
)

// Fixed ids keep seeding idempotent across restarts.
const (
	DefaultAgentAyeshaID = "a0000000-0000-4000-8000-000000000001"
	DefaultAgentBilalID  = "a0000000-0000-4000-8000-000000000002"
	DefaultAgentSanaID   = "a0000000-0000-4000-8000-000000000003"
	DefaultAgentUsmanID  = "a0000000-0000-4000-8000-000000000004"
	DefaultAgentHinaID   = "a0000000-0000-4000-8000-000000000005"
)

// DefaultAgents are the demo listings shown on a fresh install. Hina has no
// address on purpose, so the area fallback is visible in the UI.
func DefaultAgents() []models.Agent {
	return []models.Agent{
		{
			ID:              uuid.MustParse(DefaultAgentAyeshaID),
			Name:            "Ayesha Khan",
			Email:           "ayesha.khan@example.com",
			Phone:           "+923001234567",
			AgencyName:      "Khan Estates",
			ExperienceYears: 8,
			NationalID:      "35202-1234567-1",
			Address:         "DHA Phase 5, Lahore",
		},
		{
			ID:              uuid.MustParse(DefaultAgentBilalID),
			Name:            "Bilal Ahmed",
			Email:           "bilal.ahmed@example.com",
			Phone:           "+923011234567",
			AgencyName:      "Capital Homes",
			ExperienceYears: 5,
			NationalID:      "61101-7654321-3",
			Address:         "F-7 Markaz, Islamabad",
		},
		{
			ID:              uuid.MustParse(DefaultAgentSanaID),
			Name:            "Sana Malik",
			Email:           "sana.malik@example.com",
			Phone:           "+923021234567",
			AgencyName:      "Seaside Realty",
			ExperienceYears: 11,
			NationalID:      "42201-1122334-4",
			Address:         "Clifton Block 4, Karachi",
		},
		{
			ID:              uuid.MustParse(DefaultAgentUsmanID),
			Name:            "Usman Tariq",
			Email:           "usman.tariq@example.com",
			Phone:           "+923031234567",
			AgencyName:      "Khan Estates",
			ExperienceYears: 3,
			NationalID:      "35201-9988776-5",
			Address:         "Bahria Town, Lahore",
		},
		{
			ID:              uuid.MustParse(DefaultAgentHinaID),
			Name:            "Hina Raza",
			Email:           "hina.raza@example.com",
			Phone:           "+923041234567",
			AgencyName:      "Independent",
			ExperienceYears: 2,
			NationalID:      "37405-5566778-2",
		},
	}
}

// SeedDefaultAgents creates the demo agents, skipping ones already present.
func SeedDefaultAgents(ctx context.Context, agentRepo repositories.AgentRepository) error {
	for _, a := range DefaultAgents() {
		if err := agentRepo.Create(ctx, &a); err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				continue
			}
			return err
		}
	}
	return nil
}
