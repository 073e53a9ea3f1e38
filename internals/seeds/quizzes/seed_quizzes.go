package quizzes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	qzmodel "quizku_backend/internals/features/quizzes/quizzes/model"
)

// Format file:
//
//	programmes:
//	  - { name: Computer Science, code: CSC }
//	sessions:
//	  - { name: 2024/2025, current: true }
//	quizzes:
//	  - title: CSC First Semester
//	    programme: Computer Science
//	    semester: First
//	    session: 2024/2025
//	    duration_minutes: 30
//	    question_ids: [...]
type SeedFile struct {
	Programmes []ProgrammeSeed `yaml:"programmes"`
	Sessions   []SessionSeed   `yaml:"sessions"`
	Quizzes    []QuizSeed      `yaml:"quizzes"`
}

type ProgrammeSeed struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

type SessionSeed struct {
	Name    string `yaml:"name"`
	Current bool   `yaml:"current"`
}

type QuizSeed struct {
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	Programme       string   `yaml:"programme"`
	Semester        string   `yaml:"semester"`
	Session         string   `yaml:"session"`
	DurationMinutes int      `yaml:"duration_minutes"`
	QuestionIDs     []string `yaml:"question_ids"`
	Published       bool     `yaml:"published"`
}

func LoadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

// ParseSeed decode + cek referensi nama programme/session di dalam file yang sama.
func ParseSeed(raw []byte) (*SeedFile, error) {
	var sf SeedFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return nil, fmt.Errorf("decode seed yaml: %w", err)
	}

	progs := map[string]bool{}
	for i, p := range sf.Programmes {
		sf.Programmes[i].Name = strings.TrimSpace(p.Name)
		if sf.Programmes[i].Name == "" {
			return nil, fmt.Errorf("programmes[%d]: name is required", i)
		}
		progs[sf.Programmes[i].Name] = true
	}
	sess := map[string]bool{}
	for i, s := range sf.Sessions {
		sf.Sessions[i].Name = strings.TrimSpace(s.Name)
		if sf.Sessions[i].Name == "" {
			return nil, fmt.Errorf("sessions[%d]: name is required", i)
		}
		sess[sf.Sessions[i].Name] = true
	}
	for i := range sf.Quizzes {
		q := &sf.Quizzes[i]
		q.Title = strings.TrimSpace(q.Title)
		q.Programme = strings.TrimSpace(q.Programme)
		q.Semester = strings.TrimSpace(q.Semester)
		q.Session = strings.TrimSpace(q.Session)
		if q.Title == "" || q.Semester == "" {
			return nil, fmt.Errorf("quizzes[%d]: title and semester are required", i)
		}
		if !progs[q.Programme] {
			return nil, fmt.Errorf("quizzes[%d]: unknown programme %q", i, q.Programme)
		}
		if !sess[q.Session] {
			return nil, fmt.Errorf("quizzes[%d]: unknown session %q", i, q.Session)
		}
		for _, id := range q.QuestionIDs {
			if _, err := uuid.Parse(id); err != nil {
				return nil, fmt.Errorf("quizzes[%d]: invalid question id %q", i, id)
			}
		}
	}
	return &sf, nil
}

// Apply idempotent: programme/session di-upsert by name, quiz dicari by
// (programme, semester, session, title) lalu di-update atau dibuat.
func Apply(ctx context.Context, db *gorm.DB, sf *SeedFile) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progIDs := map[string]uuid.UUID{}
		for _, p := range sf.Programmes {
			row := qzmodel.ProgrammeModel{Name: p.Name, Code: p.Code}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"code", "updated_at"}),
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("seed programme %q: %w", p.Name, err)
			}
			if err := tx.Where("name = ?", p.Name).First(&row).Error; err != nil {
				return err
			}
			progIDs[p.Name] = row.ID
		}

		sessIDs := map[string]uuid.UUID{}
		for _, s := range sf.Sessions {
			row := qzmodel.SessionModel{Name: s.Name, IsCurrent: s.Current}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"is_current", "updated_at"}),
			}).Create(&row).Error; err != nil {
				return fmt.Errorf("seed session %q: %w", s.Name, err)
			}
			if err := tx.Where("name = ?", s.Name).First(&row).Error; err != nil {
				return err
			}
			sessIDs[s.Name] = row.ID
		}

		for _, q := range sf.Quizzes {
			ids := pq.StringArray(q.QuestionIDs)
			if ids == nil {
				ids = pq.StringArray{}
			}
			row := qzmodel.QuizModel{
				Title:           q.Title,
				Description:     q.Description,
				ProgrammeID:     progIDs[q.Programme],
				Semester:        q.Semester,
				SessionID:       sessIDs[q.Session],
				DurationMinutes: q.DurationMinutes,
				QuestionIDs:     ids,
				IsPublished:     q.Published,
			}

			var existing qzmodel.QuizModel
			err := tx.Where("programme_id = ? AND semester = ? AND session_id = ? AND title = ?",
				row.ProgrammeID, row.Semester, row.SessionID, row.Title).
				Take(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&row).Error; err != nil {
					return fmt.Errorf("seed quiz %q: %w", q.Title, err)
				}
			case err != nil:
				return err
			default:
				if err := tx.Model(&existing).
					Select("description", "duration_minutes", "question_ids", "is_published", "updated_at").
					Updates(&row).Error; err != nil {
					return fmt.Errorf("update quiz %q: %w", q.Title, err)
				}
			}
		}
		return nil
	})
}
