package service

import (
	"github.com/worklink-app/go-work-link/internal/adapter"
	"github.com/worklink-app/go-work-link/internal/logger"
)

type ClientServices struct {
	AuthService      ClientAuthService
	LifecycleService ClientLifecycleService
	KeepAliveJob     KeepAliveJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter, sessions SessionStore, streams StreamRegistry, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:      NewClientAuthService(serverAdapter, sessions, streams, log),
		LifecycleService: NewClientLifecycleService(serverAdapter, sessions, streams, log),
		KeepAliveJob:     NewKeepAliveJob(streams, sessions),
	}
}
