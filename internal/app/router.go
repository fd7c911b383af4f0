package app

import (
	"tower_trivia_backend/docs"
	"tower_trivia_backend/internal/config"
	"tower_trivia_backend/internal/middleware"
	"tower_trivia_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Check)

	// Public game surface. The game client calls these without a
	// session.
	router.POST("/register", c.auth.Register)
	router.POST("/login", c.auth.Login)

	game := router.Group("/game")
	{
		game.GET("/worldnames", c.content.WorldNames)
		game.GET("/towernames", c.content.TowerNames)
		game.GET("/worldquestions", c.content.WorldQuestions)

		game.GET("/storydata", c.story.StoryData)

		game.GET("/challengedata", c.challenge.ChallengeData)
		game.GET("/instructordungeon", c.challenge.InstructorDungeon)
		game.GET("/possiblechallengequestions", c.challenge.PossibleChallengeQuestions)
		game.PUT("/dungeon", c.challenge.UpdateDungeon)

		game.GET("/leaderboardlevel", c.leaderboard.LevelLeaderboard)
		game.GET("/leaderboardaccuracy", c.leaderboard.AccuracyLeaderboard)

		game.PUT("/increment", c.progress.Increment)
		game.PUT("/decrement", c.progress.Decrement)

		game.PUT("/response", c.response.Submit)
	}

	// Authenticated surface.
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.PUT("/player/avatar", c.player.UploadAvatar)

		admin := api.Group("/admin")
		admin.Use(middleware.InstructorMiddleware())
		{
			admin.POST("/world", c.admin.CreateWorld)
			admin.POST("/tower", c.admin.CreateTower)
			admin.POST("/level", c.admin.CreateLevel)
			admin.POST("/question", c.admin.CreateQuestion)
			admin.DELETE("/question/:id", c.admin.DeleteQuestion)
			admin.PUT("/instructordungeon", c.admin.UpdateInstructorDungeon)
		}
	}
}
