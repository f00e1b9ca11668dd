// Package modkit assembles API modules from shared dependencies
package modkit

import "moodlog/internal/modkit/module"

// Module is what the API mounts
type Module = module.Module

var _ Module = (*Mounted)(nil)
