package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge/config"
	"github.com/quizforge/quizforge/database"
	_ "github.com/quizforge/quizforge/docs" // Swagger docs
	"github.com/quizforge/quizforge/internal/controller"
	"github.com/quizforge/quizforge/internal/logger"
	"github.com/quizforge/quizforge/internal/model"
	"github.com/quizforge/quizforge/internal/repository"
	"github.com/quizforge/quizforge/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizForge API
// @version 1.0
// @description Quiz creation, invitations, answer submission, and scoring.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewParticipationRepository,
			repository.NewAnswerSubmissionRepository,
			repository.NewInvitationRepository,
			repository.NewParticipationFinder,
			repository.NewTransactionManager,
		),

		// Services
		fx.Provide(
			service.NewScoreCalculator,
			service.NewSubmissionService,
			service.NewQuizService,
			service.NewProgressService,
			service.NewLogInvitationSender,
			func(
				quizRepo repository.QuizRepository,
				userRepo repository.UserRepository,
				invitationRepo repository.InvitationRepository,
				sender service.InvitationSender,
				txManager repository.TransactionManager,
				cfg *config.Config,
			) service.InvitationService {
				return service.NewInvitationService(quizRepo, userRepo, invitationRepo, sender, txManager, cfg.BaseURL)
			},
		),

		// Controllers
		fx.Provide(
			controller.NewQuizController,
			controller.NewSubmissionController,
			controller.NewInvitationController,
			controller.NewProgressController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *controller.QuizController,
	submissionCtrl *controller.SubmissionController,
	invitationCtrl *controller.InvitationController,
	progressCtrl *controller.ProgressController,
) {
	api := router.Group("/api/v1")
	{
		quizzes := api.Group("/quizzes")
		quizzes.POST("", quizCtrl.CreateQuiz)
		quizzes.GET("", quizCtrl.GetCreatorQuizzes)
		quizzes.GET("/:quiz_id", quizCtrl.GetQuiz)
		quizzes.POST("/:quiz_id/submissions", submissionCtrl.SubmitQuizAnswers)
		quizzes.POST("/:quiz_id/invitations", invitationCtrl.SendInvitation)
		quizzes.GET("/:quiz_id/progress", progressCtrl.GetUserQuizProgress)
		quizzes.GET("/:quiz_id/creator-progress", progressCtrl.GetCreatorQuizProgress)
		quizzes.GET("/:quiz_id/scores", progressCtrl.GetQuizScores)

		api.POST("/invitations/:invitation_id/accept", invitationCtrl.AcceptInvitation)
		api.GET("/users/me/quizzes", quizCtrl.GetUserQuizzes)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizForge API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.Answer{},
		&model.Invitation{},
		&model.Participation{},
		&model.AnswerSubmission{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}
