package scope

import "gorm.io/gorm"

// WithSoftDeleted includes soft deleted rows. Issue listings need it: a
// soft-deleted issue still shows up with its deleted flag set.
func WithSoftDeleted(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
