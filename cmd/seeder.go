package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with the default pipeline and panel accounts for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			tables := []string{
				"feedbacks", "interviews", "comments", "stage_histories",
				"candidates", "requirement_recruiters", "requirements",
				"sessions", "users", "stages",
			}
			for _, t := range tables {
				if err := db.Exec("DELETE FROM " + t).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", t, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		accounts := []struct {
			Username string
			Password string
			FullName string
			Email    string
			Role     string
		}{
			{"admin", "admin123", "Administrator", "admin@example.com", "admin"},
			{"manager", "manager123", "Hiring Manager", "manager@example.com", "manager"},
			{"recruiter", "recruiter123", "Recruiter", "recruiter@example.com", "recruiter"},
		}

		for _, a := range accounts {
			var exists int
			if err := db.Raw("SELECT 1 FROM users WHERE username = ?", a.Username).Row().Scan(&exists); err == nil {
				fmt.Printf("user %s already exists; skipping\n", a.Username)
				continue
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cfg.Security.BCryptCost)
			if err != nil {
				log.Fatalf("failed to hash password for %s: %v", a.Username, err)
			}

			err = db.Exec(
				"INSERT INTO users (username, password_hash, full_name, email, role, created_at, updated_at) VALUES (?, ?, ?, ?, ?, now(), now())",
				a.Username, string(hash), a.FullName, a.Email, a.Role,
			).Error
			if err != nil {
				log.Fatalf("failed to insert user %s: %v", a.Username, err)
			}
			fmt.Println("Seeded user:", a.Username)
		}

		stages := []struct {
			Name      string
			Position  int
			IsDefault bool
		}{
			{"Applied", 1, true},
			{"Screening", 2, false},
			{"Interview", 3, false},
			{"Offer", 4, false},
			{"Hired", 5, false},
		}

		for _, s := range stages {
			var exists int
			if err := db.Raw("SELECT 1 FROM stages WHERE name = ?", s.Name).Row().Scan(&exists); err == nil {
				continue
			}

			err := db.Exec(
				"INSERT INTO stages (name, position, is_default) VALUES (?, ?, ?)",
				s.Name, s.Position, s.IsDefault,
			).Error
			if err != nil {
				log.Fatalf("failed to insert stage %s: %v", s.Name, err)
			}
			fmt.Println("Seeded stage:", s.Name)
		}

		fmt.Println("Seeding completed")
	},
}
