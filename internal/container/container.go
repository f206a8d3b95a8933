package container

import (
	app "canopy-bot/internal/application"
	"canopy-bot/internal/domain/port"
)

type Container struct {
	UserService        *app.UserService
	EnhancementService *app.EnhancementService
}

func New(userRepo port.UserRepository, enhancer port.CanopyEnhancer) *Container {
	userService := app.NewUserService(userRepo)
	enhancementService := app.NewEnhancementService(userService, enhancer)

	return &Container{
		UserService:        userService,
		EnhancementService: enhancementService,
	}
}
