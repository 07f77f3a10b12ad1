// Package sqlite persists profiles and cached analysis results in a local
// SQLite database.
package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/gzhole/labelshield/internal/profile"
	"github.com/gzhole/labelshield/internal/scoring"
)

// Store implements service.ProfileStore and service.ResultCache.
type Store struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// BusyTimeout is how long a connection waits on a locked database before
// failing with SQLITE_BUSY.
const BusyTimeout = 5 * time.Second

// Open opens the database at path. Every connection runs in WAL mode with a
// busy timeout so concurrent server handlers queue instead of failing.
func Open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        dsn(path),
	}, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		path, sep, BusyTimeout.Milliseconds())
}

// New wraps an open database. Cached results live for ttl; a ttl of zero
// or less means they never expire.
func New(db *gorm.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl, now: time.Now}
}

// OpenStore opens the database at path and brings its schema up to date.
func OpenStore(ctx context.Context, path string, ttl time.Duration) (*Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return New(db, ttl), nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetProfile returns the empty profile for an unknown user.
func (s *Store) GetProfile(ctx context.Context, userID string) (profile.Profile, error) {
	rows := make([]ProfileModel, 0, 1)
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&rows).Error; err != nil {
		return profile.Profile{}, err
	}
	if len(rows) == 0 {
		return profile.Profile{}, nil
	}

	m := rows[0]
	var p profile.Profile
	for _, f := range []struct {
		raw string
		dst *[]string
	}{
		{m.Allergies, &p.Allergies},
		{m.DietaryRestrictions, &p.DietaryRestrictions},
		{m.HealthConditions, &p.HealthConditions},
		{m.HealthGoals, &p.HealthGoals},
	} {
		if err := json.Unmarshal([]byte(f.raw), f.dst); err != nil {
			return profile.Profile{}, fmt.Errorf("decode profile %s: %w", userID, err)
		}
	}
	return p, nil
}

// SaveProfile inserts or replaces the stored profile.
func (s *Store) SaveProfile(ctx context.Context, userID string, p profile.Profile) error {
	m := ProfileModel{
		UserID:              userID,
		Allergies:           encodeList(p.Allergies),
		DietaryRestrictions: encodeList(p.DietaryRestrictions),
		HealthConditions:    encodeList(p.HealthConditions),
		HealthGoals:         encodeList(p.HealthGoals),
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"allergies", "dietary_restrictions", "health_conditions", "health_goals", "updated_at",
		}),
	}).Create(&m).Error
}

// Get returns a cached result. Expired rows are misses.
func (s *Store) Get(ctx context.Context, key string) (*scoring.Result, bool, error) {
	rows := make([]CacheEntryModel, 0, 1)
	q := s.db.WithContext(ctx).Where("cache_key = ?", key)
	if s.ttl > 0 {
		q = q.Where("expires_at > ?", s.now().Unix())
	}
	if err := q.Limit(1).Find(&rows).Error; err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}

	var result scoring.Result
	if err := json.Unmarshal([]byte(rows[0].Result), &result); err != nil {
		return nil, false, fmt.Errorf("decode cached result %s: %w", key, err)
	}
	return &result, true, nil
}

// Set stores a result, replacing any previous entry for key.
func (s *Store) Set(ctx context.Context, key string, result *scoring.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	now := s.now()
	m := CacheEntryModel{
		CacheKey:  key,
		Result:    string(data),
		CreatedAt: now,
		ExpiresAt: s.expiry(now),
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		UpdateAll: true,
	}).Create(&m).Error
}

// PurgeExpired deletes expired cache rows and returns how many went.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Where("expires_at <= ?", s.now().Unix()).Delete(&CacheEntryModel{})
	return res.RowsAffected, res.Error
}

func (s *Store) expiry(now time.Time) int64 {
	if s.ttl <= 0 {
		return 0
	}
	return now.Add(s.ttl).Unix()
}

func encodeList(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return string(data)
}
