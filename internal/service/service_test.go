package service_test

import (
	"context"
	"testing"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/devNevtis/salesToolsAdminSpace/internal/repository"
	"github.com/devNevtis/salesToolsAdminSpace/internal/service"
	"github.com/devNevtis/salesToolsAdminSpace/internal/validation"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory database with the schema created by hand.
// AutoMigrate cannot be used here because the models carry postgres-only
// column types (uuid defaults, text arrays, jsonb).
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	ddl := []string{
		`CREATE TABLE companies (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			website TEXT,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			postal_code TEXT NOT NULL,
			country TEXT NOT NULL,
			description TEXT,
			pbx_domain TEXT,
			configuration TEXT
		)`,
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			created_at DATETIME,
			updated_at DATETIME,
			highlevel_id TEXT,
			role TEXT NOT NULL,
			name TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT NOT NULL,
			extension TEXT,
			profile_photo TEXT,
			password_hash TEXT NOT NULL,
			position TEXT NOT NULL,
			v_text TEXT,
			company_id TEXT NOT NULL,
			global_settings TEXT,
			metric_access NUMERIC NOT NULL DEFAULT 1,
			permissions TEXT,
			commission_rate REAL NOT NULL DEFAULT 0,
			manager_id TEXT
		)`,
		`CREATE TABLE pbx_domains (
			domain_uuid TEXT PRIMARY KEY,
			parent_uuid TEXT,
			domain_name TEXT NOT NULL,
			enabled NUMERIC NOT NULL DEFAULT 1,
			description TEXT,
			insert_date TEXT,
			insert_user TEXT,
			update_date TEXT,
			update_user TEXT,
			synced_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

type testEnv struct {
	db             *gorm.DB
	companyRepo    *repository.CompanyRepository
	userRepo       *repository.UserRepository
	pbxDomainRepo  *repository.PBXDomainRepository
	companyService *service.CompanyService
	userService    *service.UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	log := zap.NewNop()
	v := validation.New()

	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	pbxDomainRepo := repository.NewPBXDomainRepository(db)

	return &testEnv{
		db:             db,
		companyRepo:    companyRepo,
		userRepo:       userRepo,
		pbxDomainRepo:  pbxDomainRepo,
		companyService: service.NewCompanyService(companyRepo, userRepo, v, log),
		userService:    service.NewUserService(userRepo, companyRepo, v, log),
	}
}

func companyInput(name string) *domain.CompanyInput {
	return &domain.CompanyInput{
		Name:       name,
		Phone:      "+1 (949) 555-0134",
		Email:      "admin@nevtis.com",
		Website:    "nevtis.com",
		Address:    "123 Harbor Blvd",
		City:       "Irvine",
		State:      "California",
		PostalCode: "92618",
		Country:    "USA",
		Configuration: domain.ConfigurationInput{
			Theme: domain.ThemeInput{
				Base1:        "#1a2b3c",
				Base2:        "#ffffff",
				Highlighting: "#ff9900",
				CallToAction: "#00cc66",
			},
			Stages: []domain.StageInput{
				{Name: "Lead", Show: true, Order: 1},
				{Name: "Won", Show: true, Order: 2},
			},
		},
	}
}

func (e *testEnv) mustCreateCompany(t *testing.T, name string) *domain.CompanyDTO {
	t.Helper()
	company, err := e.companyService.Create(context.Background(), companyInput(name))
	require.NoError(t, err)
	return company
}

func userInput(role, email, companyID string) *domain.UserInput {
	return &domain.UserInput{
		Role:      role,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Phone:     "9495550134",
		Password:  "Sup3rSecret",
		Position:  "Director",
		CompanyID: companyID,
	}
}

func (e *testEnv) mustCreateUser(t *testing.T, in *domain.UserInput) *domain.UserDTO {
	t.Helper()
	user, err := e.userService.Create(context.Background(), in, "")
	require.NoError(t, err)
	return user
}
