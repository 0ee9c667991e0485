package service_test

import (
	"context"
	"testing"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/devNevtis/salesToolsAdminSpace/internal/repository"
	"github.com/devNevtis/salesToolsAdminSpace/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserServiceCreateOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company := env.mustCreateCompany(t, "Nevtis Corp")
	created := env.mustCreateUser(t, userInput("owner", "ada@nevtis.com", company.ID.String()))

	assert.Equal(t, domain.RoleOwner, created.Role)
	assert.Equal(t, "Ada Lovelace", created.Name)
	assert.Equal(t, company.ID, created.CompanyID)
	assert.Equal(t, "Nevtis Corp", created.CompanyName)
	require.NotNil(t, created.MetricAccess)
	assert.True(t, *created.MetricAccess)
	assert.Equal(t, []string{}, created.GlobalSettings)
	assert.Nil(t, created.Permissions)
	assert.Nil(t, created.CommissionRate)

	// The stored hash must verify against the submitted password
	stored, err := env.userRepo.GetByEmail(ctx, "ada@nevtis.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Sup3rSecret")))
}

func TestUserServiceCreateUnknownCompany(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.userService.Create(context.Background(), userInput("owner", "ada@nevtis.com", uuid.NewString()), "")
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Company not found", verr.Fields["companyId"])
}

func TestUserServiceCreateDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	company := env.mustCreateCompany(t, "Nevtis Corp")
	env.mustCreateUser(t, userInput("owner", "ada@nevtis.com", company.ID.String()))

	_, err := env.userService.Create(context.Background(), userInput("manager", "ada@nevtis.com", company.ID.String()), "")
	assert.ErrorIs(t, err, service.ErrDuplicateEmail)
}

func TestUserServiceEndpointRoleMismatch(t *testing.T) {
	env := newTestEnv(t)

	company := env.mustCreateCompany(t, "Nevtis Corp")
	in := userInput("sale", "sam@nevtis.com", company.ID.String())

	_, err := env.userService.Create(context.Background(), in, domain.RoleOwner)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "role")
}

func TestUserServiceCreateSale(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company := env.mustCreateCompany(t, "Nevtis Corp")
	manager := env.mustCreateUser(t, userInput("manager", "mgr@nevtis.com", company.ID.String()))

	in := userInput("sale", "sam@nevtis.com", company.ID.String())
	in.FirstName = "Sam"
	in.LastName = "Seller"
	in.ManagerID = manager.ID.String()
	in.CommissionRate = domain.NumberFrom(12.5)

	created, err := env.userService.Create(ctx, in, domain.RoleSale)
	require.NoError(t, err)
	require.NotNil(t, created.CommissionRate)
	assert.Equal(t, 12.5, *created.CommissionRate)
	require.NotNil(t, created.ManagerID)
	assert.Equal(t, manager.ID, *created.ManagerID)
	assert.Equal(t, "Ada Lovelace", created.ManagerName)
}

func TestUserServiceCreateSaleManagerChecks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company := env.mustCreateCompany(t, "Nevtis Corp")
	other := env.mustCreateCompany(t, "Acme Ltd")
	owner := env.mustCreateUser(t, userInput("owner", "own@nevtis.com", company.ID.String()))

	otherMgrIn := userInput("manager", "mgr@acme.com", other.ID.String())
	otherManager := env.mustCreateUser(t, otherMgrIn)

	tests := []struct {
		name      string
		managerID string
		want      string
	}{
		{"missing manager", uuid.NewString(), "Manager not found"},
		{"not a manager", owner.ID.String(), "Selected user is not a manager"},
		{"wrong company", otherManager.ID.String(), "Manager must belong to the same company"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := userInput("sale", "sam@nevtis.com", company.ID.String())
			in.ManagerID = tt.managerID

			_, err := env.userService.Create(ctx, in, "")
			var verr *service.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Fields["managerId"])
		})
	}
}

func TestUserServiceUpdateKeepsPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company := env.mustCreateCompany(t, "Nevtis Corp")
	created := env.mustCreateUser(t, userInput("owner", "ada@nevtis.com", company.ID.String()))

	in := userInput("owner", "ada@nevtis.com", company.ID.String())
	in.Password = ""
	in.Position = "CTO"

	updated, err := env.userService.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "CTO", updated.Position)

	stored, err := env.userRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Sup3rSecret")))
}

func TestUserServiceUpdateRoleImmutable(t *testing.T) {
	env := newTestEnv(t)

	company := env.mustCreateCompany(t, "Nevtis Corp")
	created := env.mustCreateUser(t, userInput("owner", "ada@nevtis.com", company.ID.String()))

	in := userInput("manager", "ada@nevtis.com", company.ID.String())
	_, err := env.userService.Update(context.Background(), created.ID, in)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Role cannot be changed", verr.Fields["role"])
}

func TestUserServiceDeleteManagerWithReports(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company := env.mustCreateCompany(t, "Nevtis Corp")
	manager := env.mustCreateUser(t, userInput("manager", "mgr@nevtis.com", company.ID.String()))

	saleIn := userInput("sale", "sam@nevtis.com", company.ID.String())
	saleIn.ManagerID = manager.ID.String()
	sale := env.mustCreateUser(t, saleIn)

	assert.ErrorIs(t, env.userService.Delete(ctx, manager.ID), service.ErrManagerHasReports)

	// Deleting the salesperson first unblocks the manager
	require.NoError(t, env.userService.Delete(ctx, sale.ID))
	require.NoError(t, env.userService.Delete(ctx, manager.ID))
}

func TestUserServiceListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company := env.mustCreateCompany(t, "Nevtis Corp")
	other := env.mustCreateCompany(t, "Acme Ltd")

	env.mustCreateUser(t, userInput("owner", "own@nevtis.com", company.ID.String()))
	env.mustCreateUser(t, userInput("manager", "mgr@nevtis.com", company.ID.String()))
	env.mustCreateUser(t, userInput("manager", "mgr@acme.com", other.ID.String()))

	byRole, err := env.userService.List(ctx, 1, 20, repository.UserFilter{Role: domain.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, int64(2), byRole.Total)

	companyID := company.ID
	byCompany, err := env.userService.List(ctx, 1, 20, repository.UserFilter{CompanyID: &companyID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), byCompany.Total)

	managers, err := env.userService.ListManagers(ctx, &companyID)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, "mgr@nevtis.com", managers[0].Email)
}

func TestUserServiceValidationFailureIsComplete(t *testing.T) {
	env := newTestEnv(t)

	company := env.mustCreateCompany(t, "Nevtis Corp")
	in := userInput("owner", "broken", company.ID.String())
	in.FirstName = ""
	in.Phone = "123"

	_, err := env.userService.Create(context.Background(), in, "")
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "firstName")
	assert.Contains(t, verr.Fields, "phone")
}
