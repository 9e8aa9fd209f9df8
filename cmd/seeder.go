package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	categoryDatamodel "github.com/pruthagwin123/expense-tracker/internal/core/datamodel/category"
	expenseDatamodel "github.com/pruthagwin123/expense-tracker/internal/core/datamodel/expense"
	userDatamodel "github.com/pruthagwin123/expense-tracker/internal/core/datamodel/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
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
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			fmt.Println("Clearing existing data...")
			db.Exec("DELETE FROM expenses")
			db.Exec("DELETE FROM categories")
			db.Exec("DELETE FROM users")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

		demo := &userDatamodel.User{
			Username:     "demo",
			Email:        "demo@mail.com",
			PasswordHash: string(hash),
			IsActive:     true,
		}

		var existing userDatamodel.User
		if err := db.Where("email = ?", demo.Email).First(&existing).Error; err == nil {
			fmt.Println("demo user already exists:", demo.Email)
			demo = &existing
		} else {
			if err := db.Create(demo).Error; err != nil {
				log.Fatalf("failed to insert demo user: %v", err)
			}
			fmt.Println("Seeded demo user:", demo.Email)
		}

		categoryNames := []string{"Groceries", "Transport", "Dining", "Utilities", "Entertainment"}
		categoryIDs := make(map[string]int64, len(categoryNames))

		for _, name := range categoryNames {
			var cat categoryDatamodel.Category
			err := db.Where("user_id = ? AND name = ?", demo.ID, name).First(&cat).Error
			if err != nil {
				cat = categoryDatamodel.Category{UserID: demo.ID, Name: name}
				if err := db.Create(&cat).Error; err != nil {
					log.Fatalf("failed to insert category %s: %v", name, err)
				}
				fmt.Printf("Seeded category: %s\n", name)
			}
			categoryIDs[name] = cat.ID
		}

		now := time.Now()
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

		samples := []struct {
			Category    string
			Amount      string
			Description string
			DayOffset   int
		}{
			{"Groceries", "54.30", "Weekly groceries", 1},
			{"Transport", "2.75", "Bus fare", 2},
			{"Dining", "18.90", "Lunch with colleagues", 3},
			{"Utilities", "92.00", "Electricity bill", 5},
			{"Entertainment", "12.50", "Movie night", 8},
			{"", "7.99", "Mystery purchase", 10},
		}

		var count int64
		db.Model(&expenseDatamodel.Expense{}).Where("user_id = ?", demo.ID).Count(&count)
		if count > 0 {
			fmt.Println("expenses already seeded, skipping")
			return
		}

		for _, s := range samples {
			amount, err := decimal.NewFromString(s.Amount)
			if err != nil {
				log.Fatalf("bad sample amount %s: %v", s.Amount, err)
			}

			var categoryID *int64
			if s.Category != "" {
				id := categoryIDs[s.Category]
				categoryID = &id
			}

			exp := &expenseDatamodel.Expense{
				UserID:      demo.ID,
				CategoryID:  categoryID,
				Amount:      amount,
				Description: s.Description,
				Date:        firstOfMonth.AddDate(0, 0, s.DayOffset-1),
			}
			if err := db.Create(exp).Error; err != nil {
				log.Fatalf("failed to insert sample expense: %v", err)
			}
		}

		fmt.Println("Sample expenses seeded successfully")
	},
}
