package seeder

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"stone-ledger-backend/internal/config"
	"stone-ledger-backend/internal/database/models"
	"stone-ledger-backend/internal/logger"
	"stone-ledger-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder populates a database with the deterministic demo dataset. Run is
// idempotent: if the admin user already exists the seeder reports current
// counts and changes nothing. All writes happen inside one transaction, so a
// failure partway through leaves the database untouched.
type Seeder struct {
	db       *gorm.DB
	cfg      *config.Config
	fixtures *Fixtures
	log      *logger.Logger
}

// Counts holds per-table row counts for reporting
type Counts struct {
	Users              int64 `json:"users"`
	Organizations      int64 `json:"organizations"`
	MaterialRates      int64 `json:"material_rates"`
	EntryTypeMaterials int64 `json:"entry_type_materials"`
	TruckEntries       int64 `json:"truck_entries"`
	OtherExpenses      int64 `json:"other_expenses"`
}

// Summary describes what a seeding run did
type Summary struct {
	AlreadySeeded bool
	Counts        Counts
}

// New creates a seeder using the given fixtures, or the built-in defaults
// when fixtures is nil
func New(db *gorm.DB, cfg *config.Config, fixtures *Fixtures, log *logger.Logger) *Seeder {
	if fixtures == nil {
		fixtures = DefaultFixtures()
	}
	return &Seeder{db: db, cfg: cfg, fixtures: fixtures, log: log}
}

// Run seeds the database and returns a summary of what exists afterwards
func (s *Seeder) Run() (*Summary, error) {
	summary := &Summary{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		orgs := repository.NewOrganizationRepository(tx)
		rates := repository.NewMaterialRateRepository(tx)
		mappings := repository.NewEntryTypeMaterialRepository(tx)
		entries := repository.NewTruckEntryRepository(tx)
		expenses := repository.NewOtherExpenseRepository(tx)

		existing, err := users.GetByUsername(s.cfg.AdminUsername)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up admin user: %w", err)
		}
		if existing != nil {
			summary.AlreadySeeded = true
			counts, err := countAll(tx)
			if err != nil {
				return err
			}
			summary.Counts = counts
			s.log.WithField("admin", s.cfg.AdminUsername).Info("Database already seeded, nothing to do")
			return nil
		}

		admin, err := s.createUser(users, s.cfg.AdminUsername, s.cfg.AdminEmail, s.cfg.AdminPassword, models.UserRoleOwner, nil)
		if err != nil {
			return err
		}

		org := &models.Organization{
			Name:    s.fixtures.OrganizationName,
			OwnerID: admin.ID,
		}
		if err := orgs.Create(org); err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		if err := users.SetOrganization(admin.ID, org.ID); err != nil {
			return fmt.Errorf("failed to attach admin to organization: %w", err)
		}

		if _, err := s.createUser(users, s.fixtures.OperatorUsername, s.fixtures.OperatorEmail, s.fixtures.OperatorPassword, models.UserRoleUser, &org.ID); err != nil {
			return err
		}

		salesRates := make(map[string]*models.MaterialRate, len(s.fixtures.SalesMaterials))
		for _, m := range s.fixtures.SalesMaterials {
			rate, err := s.createRate(rates, org.ID, m)
			if err != nil {
				return err
			}
			salesRates[m.MaterialType] = rate
			if err := s.mapRate(mappings, org.ID, models.EntryTypeSales, rate); err != nil {
				return err
			}
		}
		for _, m := range s.fixtures.RawStoneMaterials {
			rate, err := s.createRate(rates, org.ID, m)
			if err != nil {
				return err
			}
			if err := s.mapRate(mappings, org.ID, models.EntryTypeRawStone, rate); err != nil {
				return err
			}
		}

		now := time.Now()
		for _, f := range s.fixtures.TruckEntries {
			entry := &models.TruckEntry{
				OrganizationID: org.ID,
				UserID:         admin.ID,
				TruckNumber:    f.TruckNumber,
				TruckName:      f.TruckName,
				EntryType:      f.EntryType,
				Units:          f.Units.Decimal,
				RatePerUnit:    f.RatePerUnit.Decimal,
				TotalAmount:    f.Units.Decimal.Mul(f.RatePerUnit.Decimal),
				EntryDate:      now.AddDate(0, 0, -f.DaysAgo),
				EntryTime:      randomWorkingTime(),
				Status:         models.EntryStatusActive,
				Notes:          f.Notes,
			}
			if f.EntryType == models.EntryTypeSales {
				if _, ok := salesRates[f.MaterialType]; !ok {
					return fmt.Errorf("truck entry %s references unseeded material %q", f.TruckNumber, f.MaterialType)
				}
				materialType := f.MaterialType
				entry.MaterialType = &materialType
			}
			if err := entries.Create(entry); err != nil {
				return fmt.Errorf("failed to create truck entry for %s: %w", f.TruckNumber, err)
			}
		}

		for _, f := range s.fixtures.Expenses {
			expense := &models.OtherExpense{
				OrganizationID: org.ID,
				UserID:         admin.ID,
				ExpensesName:   f.ExpensesName,
				Amount:         f.Amount.Decimal,
				Others:         f.Others,
				Date:           now.AddDate(0, 0, -f.DaysAgo),
				IsActive:       true,
			}
			if err := expenses.Create(expense); err != nil {
				return fmt.Errorf("failed to create expense %q: %w", f.ExpensesName, err)
			}
		}

		counts, err := countAll(tx)
		if err != nil {
			return err
		}
		summary.Counts = counts

		s.log.WithFields(map[string]interface{}{
			"users":                counts.Users,
			"organizations":        counts.Organizations,
			"material_rates":       counts.MaterialRates,
			"entry_type_materials": counts.EntryTypeMaterials,
			"truck_entries":        counts.TruckEntries,
			"other_expenses":       counts.OtherExpenses,
		}).Info("Database seeded")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// ClearData wipes all seeded data. Tables are emptied children-first so the
// RESTRICT foreign keys never fire: expenses and truck entries go before the
// bridge rows, the bridge rows before the rate catalog, and organizations
// before users.
func (s *Seeder) ClearData() error {
	order := []interface{}{
		&models.OtherExpense{},
		&models.TruckEntry{},
		&models.EntryTypeMaterial{},
		&models.MaterialRate{},
		&models.Organization{},
		&models.User{},
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range order {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear %T: %w", model, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("All seeded data cleared")
	return nil
}

// Counts returns current row counts across the seeded tables
func (s *Seeder) Counts() (Counts, error) {
	return countAll(s.db)
}

func (s *Seeder) createUser(users repository.UserRepositoryInterface, username, email, password string, role models.UserRole, orgID *uuid.UUID) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password for %s: %w", username, err)
	}
	user := &models.User{
		Username:       username,
		Email:          email,
		PasswordHash:   string(hash),
		Role:           role,
		OrganizationID: orgID,
		IsActive:       true,
	}
	if err := users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user %s: %w", username, err)
	}
	return user, nil
}

func (s *Seeder) createRate(rates repository.MaterialRateRepositoryInterface, orgID uuid.UUID, m MaterialFixture) (*models.MaterialRate, error) {
	rate := &models.MaterialRate{
		OrganizationID: orgID,
		MaterialType:   m.MaterialType,
		RatePerUnit:    m.RatePerUnit.Decimal,
		UnitType:       m.UnitType,
		IsActive:       true,
	}
	if err := rates.Create(rate); err != nil {
		return nil, fmt.Errorf("failed to create material rate %q: %w", m.MaterialType, err)
	}
	return rate, nil
}

func (s *Seeder) mapRate(mappings repository.EntryTypeMaterialRepositoryInterface, orgID uuid.UUID, entryType models.EntryType, rate *models.MaterialRate) error {
	mapping := &models.EntryTypeMaterial{
		OrganizationID: orgID,
		EntryType:      entryType,
		MaterialRateID: rate.ID,
	}
	if _, err := mappings.Upsert(mapping); err != nil {
		return fmt.Errorf("failed to map %s to %s: %w", rate.MaterialType, entryType, err)
	}
	return nil
}

func countAll(db *gorm.DB) (Counts, error) {
	var counts Counts
	tables := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.User{}, &counts.Users},
		{&models.Organization{}, &counts.Organizations},
		{&models.MaterialRate{}, &counts.MaterialRates},
		{&models.EntryTypeMaterial{}, &counts.EntryTypeMaterials},
		{&models.TruckEntry{}, &counts.TruckEntries},
		{&models.OtherExpense{}, &counts.OtherExpenses},
	}
	for _, t := range tables {
		if err := db.Model(t.model).Count(t.dst).Error; err != nil {
			return Counts{}, fmt.Errorf("failed to count %T: %w", t.model, err)
		}
	}
	return counts, nil
}

// randomWorkingTime picks an HH:MM between 09:00 and 16:59
func randomWorkingTime() string {
	return fmt.Sprintf("%02d:%02d", 9+rand.Intn(8), rand.Intn(60))
}
