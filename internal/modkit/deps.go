package modkit

import (
	"moodlog/internal/modkit/repokit"
	"moodlog/internal/platform/config"
	"moodlog/internal/platform/logger"
)

// Deps is what every module constructor receives
// Cfg is the unprefixed root; modules pick their own prefix from it
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}
