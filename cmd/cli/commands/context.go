package commands

import (
	"go.uber.org/zap"

	"github.com/rosterkit/rosterkit/internal/config"
)

// AppContext holds the dependencies shared by all commands.
type AppContext struct {
	Cfg    *config.Config
	Logger *zap.Logger
}
