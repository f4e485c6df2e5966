// access/model.go
package access

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Known roles. The set is closed: a role outside this list never gains
// access, no matter what the persisted configuration says.
const (
	RoleSuperAdmin       = "Super-Admin"
	RoleClubAdmin        = "Club-Admin"
	RoleBootcampProvider = "Trainingslager-Anbieter"
	RoleSponsor          = "Sponsor"
)

// Application modules a role can be granted. Module names double as the
// navigation keys the frontend uses.
const (
	ModuleDashboard   = "dashboard"
	ModuleClubs       = "vereine"
	ModuleMembers     = "mitglieder"
	ModuleTeams       = "teams"
	ModuleBootcamps   = "trainingslager"
	ModuleSponsors    = "sponsoren"
	ModuleTournaments = "turniere"
	ModuleInvoices    = "rechnungen"
	ModuleSettings    = "einstellungen"
)

// RolesConfiguration maps a role to the ordered list of modules it may access.
type RolesConfiguration map[string][]string

// NavigationItem is one entry of the static navigation catalog.
type NavigationItem struct {
	Module  string `json:"module"`
	Section string `json:"section"`
	Href    string `json:"href"`
}

// RolesConfigurationRecord is the persisted roles configuration document.
// A single row keyed by ConfigKey holds the whole mapping as JSON.
type RolesConfigurationRecord struct {
	gorm.Model
	Key   string `json:"key" gorm:"uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:json"`
}

// ConfigKey is the row key of the persisted roles configuration.
const ConfigKey = "roles_configuration"

// defaultRolesConfiguration is the hard-coded fallback mapping. It is never
// mutated; ResolveConfiguration copies it before overlaying persisted values.
var defaultRolesConfiguration = RolesConfiguration{
	RoleSuperAdmin: {
		ModuleDashboard, ModuleClubs, ModuleMembers, ModuleTeams,
		ModuleBootcamps, ModuleSponsors, ModuleTournaments,
		ModuleInvoices, ModuleSettings,
	},
	RoleClubAdmin: {
		ModuleDashboard, ModuleMembers, ModuleTeams,
		ModuleBootcamps, ModuleTournaments, ModuleInvoices,
	},
	RoleBootcampProvider: {
		ModuleDashboard, ModuleBootcamps, ModuleInvoices,
	},
	RoleSponsor: {
		ModuleDashboard, ModuleSponsors,
	},
}

// DefaultRolesConfiguration returns a deep copy of the built-in mapping.
func DefaultRolesConfiguration() RolesConfiguration {
	out := make(RolesConfiguration, len(defaultRolesConfiguration))
	for role, modules := range defaultRolesConfiguration {
		out[role] = append([]string(nil), modules...)
	}
	return out
}

// defaultNavigation is the static navigation catalog. Order matters: the
// frontend renders items in exactly this order after filtering.
var defaultNavigation = []NavigationItem{
	{Module: ModuleDashboard, Section: "allgemein", Href: "/dashboard"},
	{Module: ModuleClubs, Section: "verwaltung", Href: "/vereine"},
	{Module: ModuleMembers, Section: "verwaltung", Href: "/mitglieder"},
	{Module: ModuleTeams, Section: "verwaltung", Href: "/teams"},
	{Module: ModuleBootcamps, Section: "angebote", Href: "/trainingslager"},
	{Module: ModuleSponsors, Section: "angebote", Href: "/sponsoren"},
	{Module: ModuleTournaments, Section: "angebote", Href: "/turniere"},
	{Module: ModuleInvoices, Section: "finanzen", Href: "/rechnungen"},
	{Module: ModuleSettings, Section: "system", Href: "/einstellungen"},
}

// DefaultNavigation returns a copy of the static navigation catalog.
func DefaultNavigation() []NavigationItem {
	return append([]NavigationItem(nil), defaultNavigation...)
}

// DecodeRolesConfiguration parses a persisted configuration document. The
// document may come from older releases or manual edits, so decoding is
// lenient: any role whose value is not a list of strings is dropped and the
// caller falls back to the default for that role. A document that is not an
// object at all decodes to nil.
func DecodeRolesConfiguration(raw []byte) RolesConfiguration {
	if len(raw) == 0 {
		return nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}

	cfg := make(RolesConfiguration, len(doc))
	for role, val := range doc {
		var modules []string
		if err := json.Unmarshal(val, &modules); err != nil {
			continue // malformed value, keep the default for this role
		}
		cfg[role] = modules
	}
	return cfg
}
