package api

import (
	"github.com/avelez/portfolio-backend/config"
	"github.com/avelez/portfolio-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, c map[string]string, notifier MessageNotifier) *routeHandlers {
	adminPassword := config.GetString(c, "ADMIN_PASSWORD", "")
	jwtSecret := []byte(config.GetString(c, "JWT_SECRET", ""))
	tokenTTL := config.GetSeconds(c, "ADMIN_TOKEN_TTL_SECONDS", 24*60*60)

	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo()),
		publicHandler:  newPublicHandler(database.ProjectRepo()),
		contactHandler: newContactHandler(database.MessageRepo(), notifier),
		authHandler:    newAuthHandler(adminPassword, jwtSecret, tokenTTL),
	}
}
