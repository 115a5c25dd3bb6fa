package config

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"finz-affiliate/internal/adapters/persistence/models"
	"finz-affiliate/internal/core/domain"
	"finz-affiliate/internal/core/navigation"
	"finz-affiliate/internal/pkg/password"
)

// Seeder handles database seeding
type Seeder struct {
	db    *gorm.DB
	admin AdminSeedConfig
	log   *zap.SugaredLogger
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, admin AdminSeedConfig, log *zap.SugaredLogger) *Seeder {
	return &Seeder{db: db, admin: admin, log: log}
}

// Run executes all seeders. Individual failures are logged, not fatal.
func (s *Seeder) Run() error {
	s.log.Info("🌱 Running database seeders...")

	if err := s.seedNavbarLinks(); err != nil {
		s.log.Warnw("⚠️ Navbar seeder skipped", "error", err)
	}

	if err := s.seedAdminUser(); err != nil {
		s.log.Warnw("⚠️ Admin seeder skipped", "error", err)
	}

	s.log.Info("✅ Database seeding completed")
	return nil
}

// seedNavbarLinks fills an empty navbar_links table with the fixed menu slots
func (s *Seeder) seedNavbarLinks() error {
	var count int64
	if err := s.db.Model(&models.NavbarLink{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := make([]models.NavbarLink, 0, len(navigation.Slots))
	for _, slot := range navigation.Slots {
		rows = append(rows, models.NavbarLink{Title: slot.Title, URL: slot.DefaultURL})
	}

	if err := s.db.Create(&rows).Error; err != nil {
		return err
	}

	s.log.Infow("✅ Navbar links seeded", "count", len(rows))
	return nil
}

// seedAdminUser creates the first admin account when admin_users is empty.
// Without ADMIN_SEED_PASSWORD nothing is created.
func (s *Seeder) seedAdminUser() error {
	var count int64
	if err := s.db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if s.admin.Password == "" {
		s.log.Warn("⚠️ admin_users is empty and ADMIN_SEED_PASSWORD is not set")
		return nil
	}

	hashed, err := password.Hash(s.admin.Password)
	if err != nil {
		return err
	}

	admin := &models.AdminUser{
		Username: s.admin.Username,
		Password: hashed,
		Role:     string(domain.RoleAdmin),
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	s.log.Infow("✅ Admin user created", "username", admin.Username)
	return nil
}
