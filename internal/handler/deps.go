package handler

import (
	"salachat/internal/app/message"
	"salachat/internal/app/participant"
	"salachat/internal/configs"
)

// AppDeps bundles the services and configuration the handlers use.
type AppDeps struct {
	Config       *configs.AppConfig
	Participants *participant.Service
	Messages     *message.Service
}
