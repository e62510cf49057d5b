package initializers

import (
	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func SyncDatabase() {
	if err := Migrate(DB); err != nil {
		log.WithError(err).Fatal("Database migration failed")
	}
	log.Info("Database synced successfully.")
}

// Migrate creates or updates every table the application uses.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Store{},
		&models.Product{},
		&models.ProductImage{},
		&models.Promotion{},
		&models.CartItem{},
		&models.Review{},
		&models.Order{},
		&models.OrderProduct{},
		&models.Post{},
	)
	return errors.Annotate(err, "auto-migrating models")
}
