package cmd

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	categoryDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/category"
	transactionDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/transaction"
	userDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/user"
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
		defer sqlDB.Close()

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			log.Println("clearing existing data")
			db.Exec("DELETE FROM transactions")
			db.Exec("DELETE FROM categories")
			db.Exec("DELETE FROM users")
		}

		seedData(db)
	},
}

func seedData(db *gorm.DB) {
	demoUID := "demo-user"
	demo := &userDatamodel.User{
		UID:         demoUID,
		DisplayName: "Demo User",
		Email:       "demo@mail.com",
		LastSeenAt:  time.Now(),
	}
	if err := db.FirstOrCreate(demo, "uid = ?", demoUID).Error; err != nil {
		log.Fatalf("failed to seed demo user: %v", err)
	}
	log.Println("seeded demo user:", demo.Email)

	categories := []struct {
		name  string
		kind  string
		color string
	}{
		{"Salary", "income", "#4caf50"},
		{"Food", "expense", "#f44336"},
		{"Transport", "expense", "#2196f3"},
		{"Entertainment", "expense", "#9c27b0"},
	}

	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		record := &categoryDatamodel.Category{
			UserID: demoUID,
			Name:   c.name,
			Type:   c.kind,
			Color:  c.color,
		}
		if err := db.Where("user_id = ? AND name = ?", demoUID, c.name).First(record).Error; err != nil {
			record.ID = uuid.NewString()
			if err := db.Create(record).Error; err != nil {
				log.Fatalf("failed to seed category %s: %v", c.name, err)
			}
		}
		categoryIDs[c.name] = record.ID
	}
	log.Printf("seeded %d categories", len(categories))

	var count int64
	db.Model(&transactionDatamodel.Transaction{}).Where("user_id = ?", demoUID).Count(&count)
	if count > 0 {
		log.Println("transactions already present, skipping")
		return
	}

	now := time.Now()
	samples := []struct {
		amount      float64
		category    string
		kind        string
		description string
		daysAgo     int
	}{
		{250000, "Salary", "income", "Monthly salary", 40},
		{250000, "Salary", "income", "Monthly salary", 10},
		{-4500, "Food", "expense", "Groceries", 35},
		{-1200, "Transport", "expense", "Metro card", 28},
		{-3500, "Food", "expense", "Coffee", 12},
		{-8000, "Entertainment", "expense", "Concert tickets", 5},
	}

	for _, s := range samples {
		record := &transactionDatamodel.Transaction{
			ID:          uuid.NewString(),
			UserID:      demoUID,
			Type:        s.kind,
			Amount:      s.amount,
			Category:    categoryIDs[s.category],
			Description: s.description,
			Date:        now.AddDate(0, 0, -s.daysAgo),
			Timestamp:   now,
		}
		if err := db.Create(record).Error; err != nil {
			log.Fatalf("failed to seed transaction %q: %v", s.description, err)
		}
	}
	log.Printf("seeded %d transactions", len(samples))
}
