package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/devNevtis/salesToolsAdminSpace/internal/pbx"
	"github.com/devNevtis/salesToolsAdminSpace/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDomainFetcher struct {
	domains []pbx.Domain
	err     error
}

func (f *fakeDomainFetcher) GetDomains(ctx context.Context) ([]pbx.Domain, error) {
	return f.domains, f.err
}

func strPtr(s string) *string { return &s }

func TestPBXServiceSyncAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	fetcher := &fakeDomainFetcher{domains: []pbx.Domain{
		{
			DomainUUID:        "0d5f7a0e-3f7b-4f39-8c0a-22f0e9c4d111",
			DomainName:        "alpha.pbx.example.com",
			DomainEnabled:     "true",
			DomainDescription: strPtr("alpha tenant"),
		},
		{
			DomainUUID:    "1e6f8b1f-4a8c-4f40-9d1b-33f1fad5e222",
			DomainName:    "beta.pbx.example.com",
			DomainEnabled: "false",
		},
		{
			// Entries without a UUID are skipped, not fatal
			DomainName:    "broken.pbx.example.com",
			DomainEnabled: "true",
		},
	}}
	svc := service.NewPBXService(env.pbxDomainRepo, fetcher, zap.NewNop())

	count, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	all, err := svc.ListDomains(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	enabled, err := svc.ListDomains(ctx, true)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	assert.Equal(t, "alpha.pbx.example.com", enabled[0].DomainName)
	assert.Equal(t, "alpha tenant", enabled[0].Description)
}

func TestPBXServiceSyncUpserts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	fetcher := &fakeDomainFetcher{domains: []pbx.Domain{
		{DomainUUID: "0d5f7a0e-3f7b-4f39-8c0a-22f0e9c4d111", DomainName: "alpha.pbx.example.com", DomainEnabled: "true"},
	}}
	svc := service.NewPBXService(env.pbxDomainRepo, fetcher, zap.NewNop())

	_, err := svc.Sync(ctx)
	require.NoError(t, err)

	// Same UUID, changed name and flag: the row must be replaced, not duplicated
	fetcher.domains[0].DomainName = "alpha-renamed.pbx.example.com"
	fetcher.domains[0].DomainEnabled = "false"
	_, err = svc.Sync(ctx)
	require.NoError(t, err)

	all, err := svc.ListDomains(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "alpha-renamed.pbx.example.com", all[0].DomainName)
	assert.False(t, all[0].Enabled)
}

func TestPBXServiceSyncDisabled(t *testing.T) {
	env := newTestEnv(t)

	svc := service.NewPBXService(env.pbxDomainRepo, nil, zap.NewNop())
	_, err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, service.ErrPBXDisabled)
}

func TestPBXServiceSyncUpstreamError(t *testing.T) {
	env := newTestEnv(t)

	fetcher := &fakeDomainFetcher{err: errors.New("connection refused")}
	svc := service.NewPBXService(env.pbxDomainRepo, fetcher, zap.NewNop())

	_, err := svc.Sync(context.Background())
	assert.Error(t, err)
}
