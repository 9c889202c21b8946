package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/DroneHQio/dronehq-app/internal/config"
	"github.com/DroneHQio/dronehq-app/internal/domain"
	"github.com/DroneHQio/dronehq-app/internal/model"
	"github.com/DroneHQio/dronehq-app/internal/repository"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(grantAdminCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "dronehq",
	Short: "DroneHQ administration tool",
	Long:  `DroneHQ administration tool for database migrations and platform admin management.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Create or update all DroneHQ tables in the configured database.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()

		err := db.AutoMigrate(
			&model.User{},
			&model.Profile{},
			&model.Organization{},
			&model.Membership{},
			&model.Class{},
			&model.FlightLog{},
			&model.ActiveFlight{},
			&model.Checklist{},
			&model.License{},
			&model.InventoryItem{},
			&model.AuthzAuditLog{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin [email]",
	Short: "Grant platform admin to a user",
	Long:  `Grant the platform administrator role to an existing account by email.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		email := args[0]
		db := openDatabase()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		userRepo := repository.NewUserRepository(db)
		membershipRepo := repository.NewMembershipRepository(db)

		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			log.Fatalf("Failed to find user %s: %v", email, err)
		}

		if _, err := membershipRepo.FindSuperAdminByUser(ctx, user.ID); err == nil {
			fmt.Printf("%s is already a platform admin\n", email)
			return
		} else if !errors.Is(err, domain.ErrMembershipNotFound) {
			log.Fatalf("Failed to check existing role: %v", err)
		}

		now := time.Now().UTC()
		m := &model.Membership{
			UserID:     user.ID,
			Role:       model.RoleSuperAdmin,
			Approved:   true,
			ApprovedAt: &now,
		}
		if err := membershipRepo.Create(ctx, m); err != nil {
			log.Fatalf("Failed to grant platform admin: %v", err)
		}

		fmt.Printf("Granted platform admin to %s\n", email)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dronehq v1.0.0")
	},
}

func openDatabase() *gorm.DB {
	cfg := config.Load()
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
