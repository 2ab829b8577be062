package migrations

import (
	"gorm.io/gorm"

	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
)

// Migrate creates/updates the schema for the persisted entities. Checkout
// sessions are ephemeral and have no table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Product{},
		&entities.Course{},
		&entities.Webhook{},
		&entities.ApiKey{},
	)
}

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	// Every read is owner-scoped, so owner_id carries most queries
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_products_owner_id ON products (owner_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_products_created_at ON products (created_at)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_products_status ON products (status)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_courses_owner_id ON courses (owner_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_webhooks_owner_id ON webhooks (owner_id)").Error; err != nil {
		return err
	}
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_api_keys_owner_id ON api_keys (owner_id)").Error; err != nil {
		return err
	}

	return nil
}
