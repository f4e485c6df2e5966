package access

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccessRepository struct {
	stored  RolesConfiguration
	loadErr error
	saveErr error

	loadCalls int
	saveCalls int
}

func (s *stubAccessRepository) LoadConfiguration() (RolesConfiguration, error) {
	s.loadCalls++
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.stored, nil
}

func (s *stubAccessRepository) SaveConfiguration(cfg RolesConfiguration) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.stored = cfg
	return nil
}

func TestResolveConfigurationDefaultsWhenNothingPersisted(t *testing.T) {
	resolved := ResolveConfiguration(nil)

	assert.Equal(t, DefaultRolesConfiguration(), resolved)
}

func TestResolveConfigurationOverlayReplacesWholesale(t *testing.T) {
	resolved := ResolveConfiguration(RolesConfiguration{
		RoleSponsor: {ModuleDashboard},
	})

	assert.Equal(t, []string{ModuleDashboard}, resolved[RoleSponsor])
	// Untouched roles keep their defaults.
	assert.Equal(t, DefaultRolesConfiguration()[RoleClubAdmin], resolved[RoleClubAdmin])
}

func TestResolveConfigurationDropsUnknownRoles(t *testing.T) {
	resolved := ResolveConfiguration(RolesConfiguration{
		"Praktikant": {ModuleDashboard, ModuleSettings},
	})

	_, ok := resolved["Praktikant"]
	assert.False(t, ok)

	// The resolved key set is always exactly the default key set.
	assert.Len(t, resolved, len(DefaultRolesConfiguration()))
}

func TestHasModuleAccess(t *testing.T) {
	gate := NewGate(&stubAccessRepository{})

	assert.True(t, gate.HasModuleAccess(RoleSuperAdmin, ModuleSettings))
	assert.True(t, gate.HasModuleAccess(RoleSponsor, ModuleSponsors))
	assert.False(t, gate.HasModuleAccess(RoleSponsor, ModuleInvoices))

	// Unknown roles and case mismatches never gain access.
	assert.False(t, gate.HasModuleAccess("Hausmeister", ModuleDashboard))
	assert.False(t, gate.HasModuleAccess("super-admin", ModuleDashboard))
}

func TestHasModuleAccessUsesPersistedOverride(t *testing.T) {
	repo := &stubAccessRepository{stored: RolesConfiguration{
		RoleSponsor: {ModuleDashboard, ModuleSponsors, ModuleInvoices},
	}}
	gate := NewGate(repo)

	assert.True(t, gate.HasModuleAccess(RoleSponsor, ModuleInvoices))
}

func TestConfigurationIsCachedAfterFirstLoad(t *testing.T) {
	repo := &stubAccessRepository{}
	gate := NewGate(repo)

	gate.HasModuleAccess(RoleSuperAdmin, ModuleSettings)
	gate.HasModuleAccess(RoleSuperAdmin, ModuleSettings)
	gate.HasModuleAccess(RoleClubAdmin, ModuleTeams)

	assert.Equal(t, 1, repo.loadCalls)
}

func TestFailedLoadServesDefaultsWithoutCaching(t *testing.T) {
	repo := &stubAccessRepository{
		stored:  RolesConfiguration{RoleSponsor: {ModuleDashboard, ModuleInvoices}},
		loadErr: errors.New("connection refused"),
	}
	gate := NewGate(repo)

	// Degraded read: defaults apply, the sponsor override is invisible.
	assert.False(t, gate.HasModuleAccess(RoleSponsor, ModuleInvoices))
	assert.True(t, gate.HasModuleAccess(RoleSponsor, ModuleDashboard))

	// Once the store recovers the next read picks up the override.
	repo.loadErr = nil
	assert.True(t, gate.HasModuleAccess(RoleSponsor, ModuleInvoices))
	assert.Equal(t, 3, repo.loadCalls)
}

func TestFilterNavItemsPreservesOrder(t *testing.T) {
	gate := NewGate(&stubAccessRepository{})

	items := gate.FilterNavItems(RoleClubAdmin, DefaultNavigation(), nil)

	var modules []string
	for _, item := range items {
		modules = append(modules, item.Module)
	}
	assert.Equal(t, []string{
		ModuleDashboard, ModuleMembers, ModuleTeams,
		ModuleBootcamps, ModuleTournaments, ModuleInvoices,
	}, modules)
}

func TestFilterNavItemsRestrictsSections(t *testing.T) {
	gate := NewGate(&stubAccessRepository{})

	items := gate.FilterNavItems(RoleSuperAdmin, DefaultNavigation(), []string{"finanzen", "system"})

	require.Len(t, items, 2)
	assert.Equal(t, ModuleInvoices, items[0].Module)
	assert.Equal(t, ModuleSettings, items[1].Module)
}

func TestFilterNavItemsEmptySectionListHidesEverything(t *testing.T) {
	gate := NewGate(&stubAccessRepository{})

	items := gate.FilterNavItems(RoleSuperAdmin, DefaultNavigation(), []string{})

	assert.Empty(t, items)
}

func TestFilterNavItemsUnknownRole(t *testing.T) {
	gate := NewGate(&stubAccessRepository{})

	assert.Empty(t, gate.FilterNavItems("Hausmeister", DefaultNavigation(), nil))
}

func TestSaveConfigurationRequiresSuperAdmin(t *testing.T) {
	repo := &stubAccessRepository{}
	gate := NewGate(repo)

	err := gate.SaveConfiguration(RoleClubAdmin, RolesConfiguration{
		RoleClubAdmin: {ModuleDashboard, ModuleSettings},
	})

	var denied *PermissionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, RoleClubAdmin, denied.Role)
	assert.Equal(t, ModuleSettings, denied.Module)

	// Nothing was written and access is unchanged.
	assert.Equal(t, 0, repo.saveCalls)
	assert.False(t, gate.HasModuleAccess(RoleClubAdmin, ModuleSettings))
}

func TestSaveConfigurationInvalidatesCache(t *testing.T) {
	repo := &stubAccessRepository{}
	gate := NewGate(repo)

	// Warm the cache with defaults.
	assert.False(t, gate.HasModuleAccess(RoleSponsor, ModuleInvoices))

	err := gate.SaveConfiguration(RoleSuperAdmin, RolesConfiguration{
		RoleSponsor: {ModuleDashboard, ModuleSponsors, ModuleInvoices},
	})
	require.NoError(t, err)

	assert.True(t, gate.HasModuleAccess(RoleSponsor, ModuleInvoices))
}

func TestSaveConfigurationPropagatesStorageError(t *testing.T) {
	repo := &stubAccessRepository{saveErr: errors.New("disk full")}
	gate := NewGate(repo)

	err := gate.SaveConfiguration(RoleSuperAdmin, RolesConfiguration{})
	assert.Error(t, err)
	assert.False(t, IsPermissionDenied(err))
}

func TestDecodeRolesConfigurationLenient(t *testing.T) {
	cfg := DecodeRolesConfiguration([]byte(`{
		"Super-Admin": ["dashboard", "einstellungen"],
		"Club-Admin": "kaputt",
		"Sponsor": ["dashboard"]
	}`))

	require.NotNil(t, cfg)
	assert.Equal(t, []string{ModuleDashboard, ModuleSettings}, cfg[RoleSuperAdmin])
	assert.Equal(t, []string{ModuleDashboard}, cfg[RoleSponsor])

	// The malformed role is dropped so the resolver falls back to its default.
	_, ok := cfg[RoleClubAdmin]
	assert.False(t, ok)
}

func TestDecodeRolesConfigurationGarbage(t *testing.T) {
	assert.Nil(t, DecodeRolesConfiguration(nil))
	assert.Nil(t, DecodeRolesConfiguration([]byte("[]")))
	assert.Nil(t, DecodeRolesConfiguration([]byte("not json")))
}
