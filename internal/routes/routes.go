package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/natbenhamou-arch/Flatly-sub000/internal/config"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/handlers"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/middleware"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/repository"
	"github.com/natbenhamou-arch/Flatly-sub000/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	profileStore := repository.NewProfileStore(db)
	swipeRepo := repository.NewSwipeRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	reportRepo := repository.NewReportRepository(db)
	relationshipRepo := repository.NewRelationshipRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	photoRepo := repository.NewPhotoRepository(db)

	feedService := services.NewFeedService(profileStore, swipeRepo, reportRepo, relationshipRepo)
	profileService := services.NewProfileService(profileStore, relationshipRepo)
	swipeService := services.NewSwipeService(swipeRepo, matchRepo)
	groupService := services.NewGroupService(groupRepo, profileStore, availabilityRepo)

	authHandler := handlers.NewAuthHandler(db, userRepo, cfg.JWTSecret)
	onboardingHandler := handlers.NewOnboardingHandler(
		profileStore.LifestyleRepository,
		profileStore.HousingRepository,
		profileStore.PreferencesRepository,
		profileStore.ProfileRepository,
	)
	profileHandler := handlers.NewProfileHandler(profileService, profileStore.ProfileRepository, photoRepo)
	feedHandler := handlers.NewFeedHandler(feedService, profileService)
	swipeHandler := handlers.NewSwipeHandler(swipeService, matchRepo)
	safetyHandler := handlers.NewSafetyHandler(reportRepo, relationshipRepo)
	groupHandler := handlers.NewGroupHandler(groupService, groupRepo)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityRepo)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.AuthRequired(cfg.JWTSecret), authHandler.Me)

	authProtected := api.Group("/v1", middleware.AuthRequired(cfg.JWTSecret))

	onboarding := authProtected.Group("/onboarding")
	onboarding.Put("/lifestyle", onboardingHandler.UpsertLifestyle)
	onboarding.Put("/housing", onboardingHandler.UpsertHousing)
	onboarding.Put("/preferences", onboardingHandler.UpsertPreferences)

	profiles := authProtected.Group("/profiles")
	profiles.Get("/me", profileHandler.GetOwnProfile)
	profiles.Put("/me", profileHandler.UpdateProfile)
	profiles.Put("/me/pause", profileHandler.SetPaused)
	profiles.Get("/me/photos", profileHandler.ListPhotos)
	profiles.Post("/me/photos", profileHandler.AddPhoto)
	profiles.Delete("/me/photos/:id", profileHandler.DeletePhoto)
	profiles.Get("/:id", profileHandler.GetProfileByID)
	profiles.Get("/:id/compatibility", feedHandler.GetCompatibility)

	authProtected.Get("/feed", feedHandler.GetFeed)

	authProtected.Post("/swipes", swipeHandler.Swipe)
	authProtected.Get("/matches", swipeHandler.ListMatches)

	safety := authProtected.Group("/safety")
	safety.Post("/reports", safetyHandler.ReportUser)
	safety.Post("/blocks", safetyHandler.BlockUser)

	groups := authProtected.Group("/groups")
	groups.Post("", groupHandler.CreateGroup)
	groups.Get("", groupHandler.ListGroups)
	groups.Get("/:id/compatibility", groupHandler.GetCompatibility)
	groups.Get("/:id/meeting-times", groupHandler.SuggestMeetingTimes)

	availability := authProtected.Group("/availability")
	availability.Get("", availabilityHandler.GetAvailability)
	availability.Put("", availabilityHandler.UpsertAvailability)
}
