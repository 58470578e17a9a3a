package app

import (
	"context"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-repositories"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-seeding"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// SeedAll inserts the demo agents, their listings and the default accounts.
// Each seeder skips rows that already exist.
func SeedAll(
	ctx context.Context,
	agentRepo repositories.AgentRepository,
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
) error {
	if err := seeding.SeedDefaultAgents(ctx, agentRepo); err != nil {
		return err
	}
	if err := seeding.SeedDefaultProperties(ctx, propertyRepo); err != nil {
		return err
	}
	if err := seeding.SeedDefaultAccounts(ctx, userRepo); err != nil {
		return err
	}
	utils.Logger.Info("Seeded demo agents, properties and accounts.")
	return nil
}
