// Seeds a small demo content tree so a fresh install has something to
// play. Safe to re-run: it exits without writing when any world exists.
//
// Usage: go run scripts/seed_content.go

package main

import (
	"log"

	"tower_trivia_backend/internal/config"
	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/pkg/database"
	"tower_trivia_backend/pkg/logger"

	"gorm.io/gorm"
)

type seedAnswer struct {
	body    string
	correct bool
}

type seedQuestion struct {
	body    string
	answers []seedAnswer
}

type seedLevel struct {
	name      string
	questions []seedQuestion
}

type seedTower struct {
	name   string
	levels []seedLevel
}

type seedWorld struct {
	name   string
	towers []seedTower
}

var demoContent = []seedWorld{
	{
		name: "Arithmetic Meadows",
		towers: []seedTower{
			{
				name: "Addition Tower",
				levels: []seedLevel{
					{
						name: "Ground Floor",
						questions: []seedQuestion{
							{"What is 2 + 2?", []seedAnswer{{"3", false}, {"4", true}, {"5", false}}},
							{"What is 7 + 5?", []seedAnswer{{"12", true}, {"11", false}, {"13", false}}},
						},
					},
					{
						name: "Second Floor",
						questions: []seedQuestion{
							{"What is 19 + 23?", []seedAnswer{{"42", true}, {"41", false}, {"43", false}}},
						},
					},
				},
			},
		},
	},
	{
		name: "Geography Peaks",
		towers: []seedTower{
			{
				name: "Capitals Tower",
				levels: []seedLevel{
					{
						name: "Base Camp",
						questions: []seedQuestion{
							{"What is the capital of France?", []seedAnswer{{"Paris", true}, {"Lyon", false}, {"Rome", false}}},
							{"What is the capital of Japan?", []seedAnswer{{"Osaka", false}, {"Tokyo", true}, {"Kyoto", false}}},
						},
					},
				},
			},
		},
	},
}

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var count int64
	db.Model(&model.World{}).Count(&count)
	if count > 0 {
		log.Println("Content already present, nothing to do")
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, w := range demoContent {
			world := &model.World{WorldName: w.name}
			if err := tx.Create(world).Error; err != nil {
				return err
			}
			for _, t := range w.towers {
				tower := &model.Tower{WorldID: world.WorldID, TowerName: t.name}
				if err := tx.Create(tower).Error; err != nil {
					return err
				}
				for _, l := range t.levels {
					level := &model.Level{TowerID: tower.TowerID, LevelName: l.name}
					if err := tx.Create(level).Error; err != nil {
						return err
					}
					for _, q := range l.questions {
						question := &model.Question{LevelID: level.LevelID, QuestionBody: q.body}
						if err := tx.Create(question).Error; err != nil {
							return err
						}
						for _, a := range q.answers {
							answer := &model.Answer{
								QuestionID: question.QuestionID,
								AnswerBody: a.body,
								Correct:    a.correct,
							}
							if err := tx.Create(answer).Error; err != nil {
								return err
							}
						}
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Demo content seeded")
}
