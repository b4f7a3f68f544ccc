package main

import (
	"context"
	"log"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"tally-service/internal/config"
	"tally-service/internal/database"
	"tally-service/internal/models"
	"tally-service/internal/repository"
)

// Seeds the bootstrap superadmin plus the initial district/position
// configuration. Superadmins are never created through the API, so this is
// the only way the first one comes into existence.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.Info("Starting database seeding...")

	db, err := database.NewMySQLDB(
		cfg.MySQL.User,
		cfg.MySQL.Password,
		cfg.MySQL.Host,
		cfg.MySQL.Port,
		cfg.MySQL.DBName,
	)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	ctx := context.Background()
	credentialRepo := repository.NewCredentialRepository(db)
	userRepo := repository.NewUserRepository(db)
	configRepo := repository.NewConfigRepository(db)

	slog.Info("Creating superadmin account...")

	hash, _ := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
	cred := &models.Credential{
		Email:        "superadmin@tally.local",
		PasswordHash: string(hash),
	}
	if err := credentialRepo.Create(ctx, cred); err != nil {
		slog.Warn("Superadmin might already exist", "error", err)
	} else {
		user := &models.User{
			ID:          cred.ID,
			Email:       cred.Email,
			DisplayName: "superadmin",
			Role:        models.RoleSuperadmin,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal("Failed to create superadmin profile:", err)
		}
		slog.Info("Created superadmin", "id", cred.ID)
	}

	slog.Info("Seeding configuration...")

	district := &models.District{
		Name: "Butaleja",
		Subunits: models.SubunitList{
			{
				Constituency: "Butaleja County",
				Subcounty:    "Busolwe",
				Parishes: []models.Parish{
					{
						Name: "Busolwe Central",
						PollingStations: []models.PollingStation{
							{Name: "Station_A"},
							{Name: "Station_B"},
							{Name: "Station_C"},
						},
					},
				},
			},
		},
	}
	if err := configRepo.CreateDistrict(ctx, district); err != nil {
		slog.Warn("District might already exist", "error", err)
	}

	for _, name := range []string{"President", "Parliament", "Chairperson LCV"} {
		if err := configRepo.CreatePosition(ctx, &models.Position{Name: name}); err != nil {
			slog.Warn("Position might already exist", "name", name, "error", err)
		}
	}

	slog.Info("Seeding completed")
}
