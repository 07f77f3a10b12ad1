package sqlite

import "time"

// ProfileModel stores each profile list as a JSON array.
type ProfileModel struct {
	UserID              string `gorm:"primaryKey"`
	Allergies           string `gorm:"not null;default:'[]'"`
	DietaryRestrictions string `gorm:"not null;default:'[]'"`
	HealthConditions    string `gorm:"not null;default:'[]'"`
	HealthGoals         string `gorm:"not null;default:'[]'"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ProfileModel) TableName() string { return "profiles" }

// CacheEntryModel holds one serialized result. ExpiresAt is a unix time in
// seconds so expiry checks compare integers.
type CacheEntryModel struct {
	CacheKey  string `gorm:"primaryKey"`
	Result    string `gorm:"not null"`
	CreatedAt time.Time
	ExpiresAt int64 `gorm:"not null;index"`
}

func (CacheEntryModel) TableName() string { return "analysis_cache" }
