package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"tower_trivia_backend/internal/config"
	"tower_trivia_backend/internal/model"
	"tower_trivia_backend/internal/repository"
	"tower_trivia_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour

	playerRepo := repository.NewPlayerRepository(db)
	contentRepo := repository.NewContentRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	dungeonRepo := repository.NewDungeonRepository(db)
	leaderboardRepo := repository.NewLeaderboardRepository(db)

	leaderboard := service.NewLeaderboardService(leaderboardRepo, nil)
	auth := NewAuthController(service.NewAuthService(playerRepo, cfg, db))
	content := NewContentController(service.NewContentService(contentRepo, nil))
	story := NewStoryController(service.NewStoryService(contentRepo, playerRepo, progressRepo))
	challenge := NewChallengeController(service.NewChallengeService(dungeonRepo, contentRepo, responseRepo))
	board := NewLeaderboardController(leaderboard)
	progress := NewProgressController(service.NewProgressService(db, contentRepo, playerRepo, progressRepo, leaderboard))
	response := NewResponseController(service.NewResponseService(playerRepo, contentRepo, responseRepo, leaderboard))

	router := gin.New()
	router.POST("/register", auth.Register)
	router.POST("/login", auth.Login)
	game := router.Group("/game")
	{
		game.GET("/worldnames", content.WorldNames)
		game.GET("/towernames", content.TowerNames)
		game.GET("/worldquestions", content.WorldQuestions)
		game.GET("/storydata", story.StoryData)
		game.GET("/challengedata", challenge.ChallengeData)
		game.GET("/instructordungeon", challenge.InstructorDungeon)
		game.GET("/possiblechallengequestions", challenge.PossibleChallengeQuestions)
		game.PUT("/dungeon", challenge.UpdateDungeon)
		game.GET("/leaderboardlevel", board.LevelLeaderboard)
		game.GET("/leaderboardaccuracy", board.AccuracyLeaderboard)
		game.PUT("/increment", progress.Increment)
		game.PUT("/decrement", progress.Decrement)
		game.PUT("/response", response.Submit)
	}

	return &testEnv{router: router, db: db, cfg: cfg}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	msg, _ := body["message"].(string)
	return msg
}

func (e *testEnv) seedContent(t *testing.T) {
	t.Helper()
	world := &model.World{WorldName: "Grasslands"}
	if err := e.db.Create(world).Error; err != nil {
		t.Fatalf("seed world: %v", err)
	}
	tower := &model.Tower{WorldID: world.WorldID, TowerName: "North Tower"}
	if err := e.db.Create(tower).Error; err != nil {
		t.Fatalf("seed tower: %v", err)
	}
	for _, name := range []string{"Meadow", "Hillside"} {
		level := &model.Level{TowerID: tower.TowerID, LevelName: name}
		if err := e.db.Create(level).Error; err != nil {
			t.Fatalf("seed level: %v", err)
		}
		question := &model.Question{LevelID: level.LevelID, QuestionBody: "Question of " + name}
		if err := e.db.Create(question).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
		for _, a := range []model.Answer{
			{QuestionID: question.QuestionID, AnswerBody: "Right", Correct: true},
			{QuestionID: question.QuestionID, AnswerBody: "Wrong"},
		} {
			if err := e.db.Create(&a).Error; err != nil {
				t.Fatalf("seed answer: %v", err)
			}
		}
	}
}
