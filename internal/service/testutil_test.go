package service

import (
	"testing"

	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/util"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&model.Player{},
		&model.World{},
		&model.Tower{},
		&model.Level{},
		&model.Question{},
		&model.Answer{},
		&model.Progress{},
		&model.Response{},
		&model.Dungeon{},
		&model.Instructor{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newRepos(db *gorm.DB) (*repository.PlayerRepository, *repository.ContentRepository, *repository.ProgressRepository, *repository.ResponseRepository, *repository.DungeonRepository, *repository.LeaderboardRepository) {
	return repository.NewPlayerRepository(db),
		repository.NewContentRepository(db),
		repository.NewProgressRepository(db),
		repository.NewResponseRepository(db),
		repository.NewDungeonRepository(db),
		repository.NewLeaderboardRepository(db)
}

func createWorld(t *testing.T, db *gorm.DB, name string) *model.World {
	t.Helper()
	world := &model.World{WorldName: name}
	if err := db.Create(world).Error; err != nil {
		t.Fatalf("create world %q: %v", name, err)
	}
	return world
}

func createTower(t *testing.T, db *gorm.DB, worldID uint, name string) *model.Tower {
	t.Helper()
	tower := &model.Tower{WorldID: worldID, TowerName: name}
	if err := db.Create(tower).Error; err != nil {
		t.Fatalf("create tower %q: %v", name, err)
	}
	return tower
}

func createLevel(t *testing.T, db *gorm.DB, towerID uint, name string) *model.Level {
	t.Helper()
	level := &model.Level{TowerID: towerID, LevelName: name}
	if err := db.Create(level).Error; err != nil {
		t.Fatalf("create level %q: %v", name, err)
	}
	return level
}

type testAnswer struct {
	body    string
	correct bool
}

func createQuestion(t *testing.T, db *gorm.DB, levelID uint, body string, answers ...testAnswer) *model.Question {
	t.Helper()
	question := &model.Question{LevelID: levelID, QuestionBody: body}
	if err := db.Create(question).Error; err != nil {
		t.Fatalf("create question %q: %v", body, err)
	}
	for _, a := range answers {
		answer := &model.Answer{QuestionID: question.QuestionID, AnswerBody: a.body, Correct: a.correct}
		if err := db.Create(answer).Error; err != nil {
			t.Fatalf("create answer %q: %v", a.body, err)
		}
	}
	return question
}

func createPlayer(t *testing.T, db *gorm.DB, name string) *model.Player {
	t.Helper()
	player := &model.Player{PlayerName: name, Password: "hash"}
	if err := db.Create(player).Error; err != nil {
		t.Fatalf("create player %q: %v", name, err)
	}
	dungeon := &model.Dungeon{PlayerName: name, Lock: true}
	if err := db.Create(dungeon).Error; err != nil {
		t.Fatalf("create dungeon for %q: %v", name, err)
	}
	return player
}

func createInstructor(t *testing.T, db *gorm.DB) *model.Instructor {
	t.Helper()
	instructor := &model.Instructor{InstructorName: util.InstructorName, Lock: true}
	if err := db.Create(instructor).Error; err != nil {
		t.Fatalf("create instructor: %v", err)
	}
	return instructor
}

// fixture is a content tree shared by gameplay tests: one world with a
// three-level tower, and a second world with a single-level tower.
type fixture struct {
	db         *gorm.DB
	world      *model.World
	caveWorld  *model.World
	tower      *model.Tower
	caveTower  *model.Tower
	levels     []*model.Level
	caveLevel  *model.Level
	questions  []*model.Question
	caveSecret *model.Question
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{db: db}
	f.world = createWorld(t, db, "Grasslands")
	f.caveWorld = createWorld(t, db, "Caves")

	f.tower = createTower(t, db, f.world.WorldID, "North Tower")
	f.caveTower = createTower(t, db, f.caveWorld.WorldID, "Cave Tower")

	for _, name := range []string{"Meadow", "Hillside", "Summit"} {
		f.levels = append(f.levels, createLevel(t, db, f.tower.TowerID, name))
	}
	f.caveLevel = createLevel(t, db, f.caveTower.TowerID, "Dark Hollow")

	f.questions = append(f.questions,
		createQuestion(t, db, f.levels[0].LevelID, "What is 2+2?",
			testAnswer{"3", false}, testAnswer{"4", true}, testAnswer{"5", false}),
		createQuestion(t, db, f.levels[0].LevelID, "What color is the sky?",
			testAnswer{"Blue", true}, testAnswer{"Green", false}),
		createQuestion(t, db, f.levels[1].LevelID, "What is 3*3?",
			testAnswer{"9", true}, testAnswer{"6", false}),
	)
	f.caveSecret = createQuestion(t, db, f.caveLevel.LevelID, "What lives in caves?",
		testAnswer{"Bats", true}, testAnswer{"Eagles", false})

	return f
}
