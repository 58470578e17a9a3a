package seeding

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-models"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-repositories"
	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

const (
	DefaultAdminID       = "11111111-2222-3333-4444-555555555555"
	DefaultAdminEmail    = "admin@estatehub.dev"
	DefaultAdminPassword = "P@ssword123"

	DefaultUserID       = "11111111-2222-3333-4444-666666666666"
	DefaultUserEmail    = "buyer@estatehub.dev"
	DefaultUserPassword = "P@ssword123"
)

// SeedDefaultAccounts creates one admin and one regular account.
func SeedDefaultAccounts(ctx context.Context, userRepo repositories.UserRepository) error {
	accounts := []struct {
		id, name, email, password, kind string
	}{
		{DefaultAdminID, "Site Admin", DefaultAdminEmail, DefaultAdminPassword, utils.AdminAccountType},
		{DefaultUserID, "Demo Buyer", DefaultUserEmail, DefaultUserPassword, utils.UserAccountType},
	}

	for _, acc := range accounts {
		id := uuid.MustParse(acc.id)
		existing, err := userRepo.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("error checking for existing account %s: %w", acc.email, err)
		}
		if existing != nil {
			utils.Logger.Infof("Default account already exists (ID=%s); skipping seed.", existing.ID)
			continue
		}

		hashedPass, err := utils.HashPassword(acc.password)
		if err != nil {
			return fmt.Errorf("failed to bcrypt-hash default password: %w", err)
		}

		user := &models.User{
			ID:           id,
			Name:         acc.name,
			Email:        acc.email,
			PasswordHash: hashedPass,
			Type:         acc.kind,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to insert default account %s: %w", acc.email, err)
		}
		utils.Logger.Infof("Seeded default %s account (ID=%s, email=%s).", acc.kind, id, acc.email)
	}
	return nil
}
