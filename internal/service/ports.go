package service

import (
	"context"

	"github.com/gzhole/labelshield/internal/logger"
	"github.com/gzhole/labelshield/internal/profile"
	"github.com/gzhole/labelshield/internal/scoring"
)

// ProfileStore persists user profiles. GetProfile returns the empty profile,
// not an error, for a user it has never seen.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (profile.Profile, error)
	SaveProfile(ctx context.Context, userID string, p profile.Profile) error
}

// ResultCache stores analysis results by content hash. A miss is
// (nil, false, nil).
type ResultCache interface {
	Get(ctx context.Context, key string) (*scoring.Result, bool, error)
	Set(ctx context.Context, key string, result *scoring.Result) error
}

// Auditor records one event per analysis. *logger.AuditLogger satisfies it.
type Auditor interface {
	Log(event logger.AnalysisEvent) error
}

// NoopCache never hits and discards writes.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (*scoring.Result, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(context.Context, string, *scoring.Result) error {
	return nil
}
