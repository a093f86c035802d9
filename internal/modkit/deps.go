// Package modkit provides module wiring and core deps
package modkit

import (
	"trendlens/internal/modkit/repokit"
	"trendlens/internal/platform/config"
	"trendlens/internal/platform/logger"
	"trendlens/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log  logger.Logger
	Cfg  config.Conf
	WH   repokit.Queryer
	Sink store.ObjectSink
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional stores
func (d Deps) ZeroOK() bool { return true }
