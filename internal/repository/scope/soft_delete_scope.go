package scope

import "gorm.io/gorm"

// WithSoftDeleted includes soft deleted records (trash views, purges).
func WithSoftDeleted(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// ExcludeSoftDeleted is effectively the default behavior but made explicit
func ExcludeSoftDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}
