package router

import (
	"github.com/pujakart/auth-service/internal/container"
	handlers "github.com/pujakart/auth-service/internal/interface/http"
	"github.com/pujakart/auth-service/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup to wire everything up.
func InitModules(r *Registry) {
	handler := handlers.NewAuthHandler(container.GetAuthService(), container.GetLogger())
	r.Add(modules.NewAuthModule(handler))
}
