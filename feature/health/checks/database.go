package checks

import (
	"context"
	"fmt"

	"gamestats/core/database"

	"gorm.io/gorm"
)

// CheckDatabase pings the override database and verifies the override tables.
// A nil db means the database is disabled.
func CheckDatabase(ctx context.Context, db *gorm.DB) Result {
	if db == nil {
		return disabled()
	}

	if err := database.Ping(ctx, db); err != nil {
		return failed(err, nil)
	}

	missing, err := database.MissingColumns(db)
	if err != nil {
		return failed(err, nil)
	}
	details := map[string]any{"driver": db.Dialector.Name()}
	if len(missing) > 0 {
		details["missing_columns"] = missing
		return failed(fmt.Errorf("override tables are incomplete"), details)
	}
	return ok(details)
}
