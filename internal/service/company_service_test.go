package service_test

import (
	"context"
	"testing"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/devNevtis/salesToolsAdminSpace/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyServiceCreateAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.mustCreateCompany(t, "Nevtis Corp")
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "https://nevtis.com", created.Website)
	assert.Len(t, created.Configuration.Stages, 2)

	got, err := env.companyService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nevtis Corp", got.Name)
	assert.Equal(t, 0, got.UserCount)
}

func TestCompanyServiceCreateInvalid(t *testing.T) {
	env := newTestEnv(t)

	in := companyInput("X")
	in.Email = "nope"

	_, err := env.companyService.Create(context.Background(), in)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "email")
}

func TestCompanyServiceGetMissing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.companyService.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrCompanyNotFound)
}

func TestCompanyServiceListSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustCreateCompany(t, "Nevtis Corp")
	env.mustCreateCompany(t, "Acme Ltd")

	result, err := env.companyService.List(ctx, 1, 20, "nevtis")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)

	all, err := env.companyService.List(ctx, 1, 20, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
	assert.Equal(t, 1, all.TotalPages)
}

func TestCompanyServiceUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.mustCreateCompany(t, "Nevtis Corp")

	in := companyInput("Nevtis Renamed")
	in.Description = "Telephony tooling"
	updated, err := env.companyService.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Nevtis Renamed", updated.Name)
	assert.Equal(t, "Telephony tooling", updated.Description)
}

func TestCompanyServiceUpdateStages(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.mustCreateCompany(t, "Nevtis Corp")

	updated, err := env.companyService.UpdateStages(ctx, created.ID, &domain.UpdateStagesRequest{
		Stages: []domain.StageInput{
			{Name: "Contacted", Show: true, Order: 1},
			{Name: "Qualified", Show: false, Order: 2},
			{Name: "Closed", Show: true, Order: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Configuration.Stages, 3)
	assert.Equal(t, "Qualified", updated.Configuration.Stages[1].Name)

	// The change must be persisted, not just echoed
	got, err := env.companyService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Configuration.Stages, 3)
}

func TestCompanyServiceUpdateStagesInvalid(t *testing.T) {
	env := newTestEnv(t)

	created := env.mustCreateCompany(t, "Nevtis Corp")

	_, err := env.companyService.UpdateStages(context.Background(), created.ID, &domain.UpdateStagesRequest{
		Stages: []domain.StageInput{
			{Name: "", Show: true, Order: 0},
		},
	})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "stages[0].name")
	assert.Contains(t, verr.Fields, "stages[0].order")
}

func TestCompanyServiceDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created := env.mustCreateCompany(t, "Nevtis Corp")
	require.NoError(t, env.companyService.Delete(ctx, created.ID))

	_, err := env.companyService.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, service.ErrCompanyNotFound)

	assert.ErrorIs(t, env.companyService.Delete(ctx, created.ID), service.ErrCompanyNotFound)
}

func TestCompanyServiceListUsers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	company := env.mustCreateCompany(t, "Nevtis Corp")
	env.mustCreateUser(t, userInput("owner", "owner@nevtis.com", company.ID.String()))

	users, err := env.companyService.ListUsers(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, domain.RoleOwner, users[0].Role)

	got, err := env.companyService.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.UserCount)
}

func TestCompanyServicePBXRefRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := companyInput("Nevtis Corp")
	in.PBXURL = &domain.PBXDomainRef{
		DomainUUID: "0d5f7a0e-3f7b-4f39-8c0a-22f0e9c4d111",
		DomainName: "nevtis.pbx.example.com",
	}

	created, err := env.companyService.Create(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, created.PBXURL)

	got, err := env.companyService.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PBXURL)
	assert.Equal(t, "nevtis.pbx.example.com", got.PBXURL.DomainName)
}
