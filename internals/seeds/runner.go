package seeds

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"quizku_backend/internals/seeds/quizzes"
)

// RunAllSeeds dijalankan dari main kalau SEED_FILE di-set.
func RunAllSeeds(db *gorm.DB, seedFile string) error {
	if seedFile == "" {
		return nil
	}
	log.Println("📥 Membaca file seed:", seedFile)

	sf, err := quizzes.LoadSeedFile(seedFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := quizzes.Apply(ctx, db, sf); err != nil {
		return err
	}
	log.Printf("✅ Seed selesai: %d programme, %d session, %d quiz",
		len(sf.Programmes), len(sf.Sessions), len(sf.Quizzes))
	return nil
}
