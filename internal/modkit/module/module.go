// Package module is the contract between the API and its modules plus a registry of their ports
package module

import phttp "moodlog/internal/platform/net/http"

// Module mounts its routes under Prefix and exposes its ports for other modules
type Module interface {
	Name() string
	Prefix() string
	Ports() any
	MountRoutes(r phttp.Router)
}
