package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// StatAlias maps a cleaned provider label to a canonical field id.
type StatAlias struct {
	ID    uint   `gorm:"column:id;primaryKey"`
	Label string `gorm:"column:label;size:64;uniqueIndex"`
	Field string `gorm:"column:field;size:64"`
}

// TableName overrides the table name.
func (StatAlias) TableName() string {
	return "stat_aliases"
}

// BlacklistedField is a canonical field id that is never returned.
type BlacklistedField struct {
	ID    uint   `gorm:"column:id;primaryKey"`
	Field string `gorm:"column:field;size:64;uniqueIndex"`
}

// TableName overrides the table name.
func (BlacklistedField) TableName() string {
	return "stat_blacklist"
}

// Overrides holds alias and blacklist entries loaded from the database.
type Overrides struct {
	Aliases   map[string]string
	Blacklist []string
}

// LoadOverrides reads every alias and blacklisted field.
// Labels and fields are lowercased so they compare against cleaned ids.
func LoadOverrides(ctx context.Context, db *gorm.DB) (*Overrides, error) {
	var aliases []StatAlias
	if err := db.WithContext(ctx).Find(&aliases).Error; err != nil {
		return nil, fmt.Errorf("failed to load stat aliases: %w", err)
	}

	var blacklist []BlacklistedField
	if err := db.WithContext(ctx).Find(&blacklist).Error; err != nil {
		return nil, fmt.Errorf("failed to load stat blacklist: %w", err)
	}

	out := &Overrides{
		Aliases:   make(map[string]string, len(aliases)),
		Blacklist: make([]string, 0, len(blacklist)),
	}
	for _, a := range aliases {
		label := strings.ToLower(strings.TrimSpace(a.Label))
		field := strings.ToLower(strings.TrimSpace(a.Field))
		if label == "" || field == "" {
			continue
		}
		out.Aliases[label] = field
	}
	for _, b := range blacklist {
		if field := strings.ToLower(strings.TrimSpace(b.Field)); field != "" {
			out.Blacklist = append(out.Blacklist, field)
		}
	}

	return out, nil
}

// Migrate creates the override tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&StatAlias{}, &BlacklistedField{})
}
