package app

import (
	"time"

	"github.com/google/uuid"

	"componentgate/internal/adapters"
	"componentgate/internal/ports"
)

type Service struct {
	Manifests ports.ManifestPort
	Workspace ports.WorkspacePort
	State     ports.StatePort
	Clock     func() time.Time
	NewRunID  func() string
}

func NewService() Service {
	return Service{
		Manifests: adapters.NewManifestFileAdapter(),
		Workspace: adapters.NewWorkspaceAdapter(),
		State:     adapters.NewStateFileAdapter(),
		Clock:     time.Now,
		NewRunID:  uuid.NewString,
	}
}
