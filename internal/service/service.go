// Package service is the request-handling layer shared by the CLI, the HTTP
// API and the MCP endpoint. It resolves profiles, consults the result cache,
// runs the scoring engine and writes the audit log.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gzhole/labelshield/internal/catalog"
	"github.com/gzhole/labelshield/internal/logger"
	"github.com/gzhole/labelshield/internal/normalize"
	"github.com/gzhole/labelshield/internal/profile"
	"github.com/gzhole/labelshield/internal/scoring"
)

var (
	// ErrUserRequired is returned by profile operations called without a
	// user id.
	ErrUserRequired = errors.New("user id is required")

	// ErrNoProfileStore is returned when profile persistence is not
	// configured.
	ErrNoProfileStore = errors.New("profile store is not configured")
)

// Request is one analysis request. When Profile is nil the stored profile
// for UserID is used; when Ingredients is empty LabelText is split instead.
type Request struct {
	Source      string
	UserID      string
	Ingredients []string
	LabelText   string
	Profile     *profile.Profile
}

// Response carries the engine result plus whether it came from the cache.
type Response struct {
	Result   *scoring.Result
	CacheHit bool
}

// IngredientInfo is a catalog entry with the rules its tags can trigger.
type IngredientInfo struct {
	Name        string                 `json:"name"`
	Category    string                 `json:"category"`
	Description string                 `json:"description,omitempty"`
	RiskTags    []string               `json:"risk_tags"`
	Rules       []catalog.ConflictRule `json:"rules"`
}

type Service struct {
	catalog     *catalog.Catalog
	engine      *scoring.Engine
	fingerprint string
	profiles    ProfileStore
	cache       ResultCache
	audit       Auditor
	log         *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

func WithProfileStore(s ProfileStore) Option {
	return func(svc *Service) { svc.profiles = s }
}

func WithCache(c ResultCache) Option {
	return func(svc *Service) {
		if c != nil {
			svc.cache = c
		}
	}
}

func WithAuditor(a Auditor) Option {
	return func(svc *Service) { svc.audit = a }
}

func WithLogger(l *zap.Logger) Option {
	return func(svc *Service) {
		if l != nil {
			svc.log = l
		}
	}
}

// New builds a Service over cat. Without options there is no profile store,
// no cache and no audit log.
func New(cat *catalog.Catalog, opts ...Option) (*Service, error) {
	data, err := catalog.Marshal(cat)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint catalog: %w", err)
	}
	sum := sha256.Sum256(data)

	svc := &Service{
		catalog:     cat,
		engine:      scoring.New(cat),
		fingerprint: hex.EncodeToString(sum[:8]),
		cache:       NoopCache{},
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Analyze scores one request. Engine validation errors are returned as is
// so callers can test them with errors.Is. Cache failures are logged and
// otherwise ignored.
func (s *Service) Analyze(ctx context.Context, req Request) (*Response, error) {
	ingredients := req.Ingredients
	if len(ingredients) == 0 && strings.TrimSpace(req.LabelText) != "" {
		text, findings := normalize.CleanLabel(req.LabelText)
		if len(findings) > 0 {
			s.log.Debug("removed hidden characters from label text",
				zap.String("source", req.Source),
				zap.Int("count", len(findings)),
				zap.String("first", findings[0].Codepoint),
			)
		}
		ingredients = normalize.SplitLabel(text)
	}

	p, err := s.resolveProfile(ctx, req)
	if err != nil {
		s.record(req, ingredients, p, nil, false, err)
		return nil, err
	}

	cleaned := trimmed(ingredients)
	key := ""
	if len(cleaned) > 0 {
		key = CacheKey(s.fingerprint, cleaned, p)
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			s.record(req, cleaned, p, cached, true, nil)
			return &Response{Result: cached, CacheHit: true}, nil
		}
	}

	result, err := s.engine.Analyze(cleaned, p)
	if err != nil {
		s.record(req, ingredients, p, nil, false, err)
		return nil, err
	}

	if err := s.cache.Set(ctx, key, result); err != nil {
		s.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}

	s.record(req, cleaned, p, result, false, nil)
	return &Response{Result: result}, nil
}

func (s *Service) resolveProfile(ctx context.Context, req Request) (profile.Profile, error) {
	if req.Profile != nil {
		return *req.Profile, nil
	}
	if req.UserID == "" || s.profiles == nil {
		return profile.Profile{}, nil
	}
	p, err := s.profiles.GetProfile(ctx, req.UserID)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("failed to load profile for %s: %w", req.UserID, err)
	}
	return p, nil
}

func (s *Service) record(req Request, ingredients []string, p profile.Profile, result *scoring.Result, cacheHit bool, err error) {
	if s.audit == nil {
		return
	}

	event := logger.AnalysisEvent{
		Source:      req.Source,
		UserID:      req.UserID,
		Ingredients: ingredients,
		Profile:     &p,
		CacheHit:    cacheHit,
	}
	if result != nil {
		event.Score = result.Score
		event.RiskClassification = string(result.RiskClassification)
		for _, f := range result.FlaggedIngredients {
			event.Flagged = append(event.Flagged, f.Ingredient)
		}
		event.Unknown = result.UnknownIngredients
		event.ConflictCount = result.ConflictCount
	}
	if err != nil {
		event.Error = err.Error()
	}

	if logErr := s.audit.Log(event); logErr != nil {
		s.log.Warn("audit log write failed", zap.Error(logErr))
	}
}

// Profile returns the stored profile for userID.
func (s *Service) Profile(ctx context.Context, userID string) (profile.Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return profile.Profile{}, ErrUserRequired
	}
	if s.profiles == nil {
		return profile.Profile{}, ErrNoProfileStore
	}
	return s.profiles.GetProfile(ctx, userID)
}

// UpdateProfile applies a partial update: only the fields present in upd
// change. It returns the stored result.
func (s *Service) UpdateProfile(ctx context.Context, userID string, upd profile.Update) (profile.Profile, error) {
	current, err := s.Profile(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}

	updated := upd.Apply(current)
	if err := s.profiles.SaveProfile(ctx, userID, updated); err != nil {
		return profile.Profile{}, fmt.Errorf("failed to save profile for %s: %w", userID, err)
	}
	return updated, nil
}

// Lookup returns the catalog entry for name along with every rule its tags
// carry, whether or not any profile would trigger them.
func (s *Service) Lookup(name string) (IngredientInfo, bool) {
	ing, ok := s.catalog.Lookup(name)
	if !ok {
		return IngredientInfo{}, false
	}

	info := IngredientInfo{
		Name:        normalize.Name(name),
		Category:    ing.Category,
		Description: ing.Description,
		RiskTags:    ing.RiskTags,
		Rules:       []catalog.ConflictRule{},
	}
	for _, tag := range ing.RiskTags {
		info.Rules = append(info.Rules, s.catalog.ConflictsForTag(tag)...)
	}
	return info, true
}

// Ingredients lists every known ingredient name, sorted.
func (s *Service) Ingredients() []string {
	return s.catalog.KnownIngredients()
}

// Catalog returns the catalog the service scores against.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

func trimmed(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
