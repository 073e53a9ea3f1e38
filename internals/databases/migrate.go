package database

import (
	"log"

	"gorm.io/gorm"

	questionModel "quizku_backend/internals/features/quizzes/questions/model"
	quizModel "quizku_backend/internals/features/quizzes/quizzes/model"
	authModel "quizku_backend/internals/features/users/auth/model"
	userModel "quizku_backend/internals/features/users/user/model"
)

// AutoMigrate hanya dipakai saat AUTO_MIGRATE=true (dev / first boot).
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("[WARN] pgcrypto extension: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&questionModel.QuestionModel{},
		&quizModel.ProgrammeModel{},
		&quizModel.SessionModel{},
		&quizModel.QuizModel{},
		&authModel.TokenBlacklist{},
	); err != nil {
		return err
	}
	log.Println("✅ AutoMigrate done.")
	return nil
}
