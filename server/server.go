// Package server wires repositories, services and handlers into a gin
// engine and runs it.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"club-review/config"
	"club-review/handlers"
	"club-review/helper"
	"club-review/middleware"
	"club-review/repositories"
	"club-review/services"
	"club-review/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Services bundles the service layer so the seeder and the router share
// one construction path.
type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Club     services.ClubService
	Tag      services.TagService
	Favorite services.FavoriteService
	Comment  services.CommentService
}

func NewServices(db *gorm.DB, log *zap.Logger) *Services {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	clubRepo := repositories.NewClubRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Initialize services
	tagService := services.NewTagService(tagRepo, log)
	return &Services{
		Auth:     services.NewAuthService(userRepo, log),
		User:     services.NewUserService(userRepo, clubRepo, favoriteRepo, log),
		Club:     services.NewClubService(clubRepo, tagRepo, tagService, log),
		Tag:      tagService,
		Favorite: services.NewFavoriteService(favoriteRepo, clubRepo, userRepo, log),
		Comment:  services.NewCommentService(commentRepo, clubRepo, userRepo, log),
	}
}

// NewRouter builds the engine serving the REST API.
func NewRouter(cfg config.Config, svc *Services, log *zap.Logger) *gin.Engine {
	h := helper.NewHTTPHelper()

	authHandler := handlers.NewAuthHandler(svc.Auth, h)
	userHandler := handlers.NewUserHandler(svc.User, h)
	clubHandler := handlers.NewClubHandler(svc.Club, h)
	tagHandler := handlers.NewTagHandler(svc.Tag, h)
	favoriteHandler := handlers.NewFavoriteHandler(svc.Favorite, h)
	commentHandler := handlers.NewCommentHandler(svc.Comment, h)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(session.Middleware(cfg.Session))

	auth := middleware.AuthMiddleware(h)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to Club Review!")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Club Review API!"})
		})

		// Auth lifecycle
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)
		api.GET("/logout", authHandler.Logout)
		api.GET("/me", auth, authHandler.GetMe)

		// Users
		api.GET("/user/:username", userHandler.GetProfile)
		api.PATCH("/user", auth, userHandler.PatchUser)
		api.GET("/emails/:code", auth, userHandler.GetMailingList)

		// Clubs
		api.GET("/clubs", clubHandler.GetClubs)
		api.POST("/clubs", auth, clubHandler.CreateClub)
		api.PATCH("/clubs/:code", auth, clubHandler.PatchClub)
		api.GET("/clubs/:tag", clubHandler.GetClubsByTag)

		// Tags
		api.GET("/tags", tagHandler.GetTags)
		api.POST("/tags", auth, tagHandler.CreateTag)
		api.GET("/tag_count", tagHandler.GetTagCounts)

		// Favorites and comments, keyed by club name
		api.GET("/:club/favorite", favoriteHandler.GetFavoriteCount)
		api.POST("/:club/favorite", auth, favoriteHandler.ToggleFavorite)
		api.GET("/:club/comment", commentHandler.GetComments)
		api.POST("/:club/comment", auth, commentHandler.AddComment)
	}

	router.NoRoute(func(c *gin.Context) {
		h.SendNotFoundError(c, "Not found", h.EmptyJsonMap())
	})

	return router
}

// Run serves handler on the configured port until ctx is cancelled, then
// drains in-flight requests.
func Run(ctx context.Context, cfg config.Config, handler http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
