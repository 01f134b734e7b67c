package main

import (
	"log/slog"
	"os"

	api "saypal-backend/cmd/api"
	authdomain "saypal-backend/internal/auth/domain"
	authRepo "saypal-backend/internal/auth/repository"
	authUsecase "saypal-backend/internal/auth/usecase"
	convdomain "saypal-backend/internal/conversation/domain"
	convRepo "saypal-backend/internal/conversation/repository"
	convUsecase "saypal-backend/internal/conversation/usecase"
	mediadomain "saypal-backend/internal/media/domain"
	mediaRepo "saypal-backend/internal/media/repository"
	mediaUsecase "saypal-backend/internal/media/usecase"
	memdomain "saypal-backend/internal/memory/domain"
	memoryRepo "saypal-backend/internal/memory/repository"
	memoryUsecase "saypal-backend/internal/memory/usecase"
	paldomain "saypal-backend/internal/pal/domain"
	palRepo "saypal-backend/internal/pal/repository"
	palUsecase "saypal-backend/internal/pal/usecase"
	userUsecase "saypal-backend/internal/user/usecase"
	"saypal-backend/pkg/config"
	"saypal-backend/pkg/database"
	"saypal-backend/pkg/discord"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&paldomain.Pal{},
		&convdomain.Conversation{},
		&convdomain.Message{},
		&memdomain.Memory{},
		&mediadomain.Media{},
	); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	tokenRepository := authRepo.NewTokenRepository(db)
	palRepository := palRepo.NewGormPalRepository(db)
	convRepository := convRepo.NewGormConversationRepository(db)
	memoryRepository := memoryRepo.NewGormMemoryRepository(db)
	mediaRepository := mediaRepo.NewGormMediaRepository(db)

	// Discord OAuth client used for sign-in and account linking
	discordClient := discord.NewClient(cfg)

	// Initialize use cases (dependency injection)
	authUc, err := authUsecase.NewAuthUsecase(userRepository, tokenRepository, discordClient, cfg)
	if err != nil {
		slog.Error("failed to initialize auth", "error", err)
		os.Exit(1)
	}
	userUc := userUsecase.NewUserUsecase(userRepository, tokenRepository, palRepository, convRepository, memoryRepository)
	palUc := palUsecase.NewPalUsecase(palRepository, userRepository)
	convUc := convUsecase.NewConversationUsecase(convRepository)
	memoryUc := memoryUsecase.NewMemoryUsecase(memoryRepository)
	mediaUc := mediaUsecase.NewMediaUsecase(mediaRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, userUc, palUc, convUc, memoryUc, mediaUc, cfg)

	// Start server
	slog.Info("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
