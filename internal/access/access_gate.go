package access

import (
	"log"
	"sync"
)

// Gate answers two questions for the whole application: may this role use
// that module, and which navigation items should this role see. It replaces
// the role-string comparisons that used to be scattered across the UI with a
// single declarative mapping.
type Gate struct {
	repo AccessRepository

	mu       sync.RWMutex
	resolved RolesConfiguration // nil until first read or after invalidation
}

// NewGate creates a Gate backed by the given repository.
func NewGate(repo AccessRepository) *Gate {
	return &Gate{repo: repo}
}

// ResolveConfiguration overlays a persisted configuration onto the built-in
// defaults. Only role keys already present in the defaults are honored;
// unknown roles in the persisted document are dropped. The result always
// contains exactly the default role key set, and the function never fails:
// a nil or partially malformed input simply yields defaults for the
// affected roles.
func ResolveConfiguration(persisted RolesConfiguration) RolesConfiguration {
	resolved := DefaultRolesConfiguration()
	if persisted == nil {
		return resolved
	}
	for role := range resolved {
		if override, ok := persisted[role]; ok && override != nil {
			resolved[role] = append([]string(nil), override...)
		}
	}
	return resolved
}

// configuration returns the resolved configuration, loading and caching it on
// first use. A failed load degrades to the hard-coded defaults without
// caching them, so a recovered store is picked up on the next read.
func (g *Gate) configuration() RolesConfiguration {
	g.mu.RLock()
	resolved := g.resolved
	g.mu.RUnlock()
	if resolved != nil {
		return resolved
	}

	persisted, err := g.repo.LoadConfiguration()
	if err != nil {
		log.Printf("access: loading roles configuration failed, serving defaults: %v", err)
		return ResolveConfiguration(nil)
	}

	resolved = ResolveConfiguration(persisted)

	g.mu.Lock()
	g.resolved = resolved
	g.mu.Unlock()
	return resolved
}

// HasModuleAccess reports whether role may access module. Matching is exact
// and case-sensitive; an unknown role has no access at all.
func (g *Gate) HasModuleAccess(role, module string) bool {
	modules, ok := g.configuration()[role]
	if !ok {
		return false
	}
	for _, m := range modules {
		if m == module {
			return true
		}
	}
	return false
}

// FilterNavItems returns the subsequence of items visible to role, preserving
// the original relative order. A non-nil visibleSections list further
// restricts the result to items whose section is in that list; the order of
// the section list itself is irrelevant.
func (g *Gate) FilterNavItems(role string, items []NavigationItem, visibleSections []string) []NavigationItem {
	var sections map[string]struct{}
	if visibleSections != nil {
		sections = make(map[string]struct{}, len(visibleSections))
		for _, s := range visibleSections {
			sections[s] = struct{}{}
		}
	}

	filtered := make([]NavigationItem, 0, len(items))
	for _, item := range items {
		if !g.HasModuleAccess(role, item.Module) {
			continue
		}
		if sections != nil {
			if _, ok := sections[item.Section]; !ok {
				continue
			}
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// SaveConfiguration replaces the persisted roles configuration wholesale.
// Only the Super-Admin may call it; every other role gets a typed
// PermissionDeniedError and the persisted state is left untouched. On
// success the cached resolution is invalidated and recomputed on next read.
func (g *Gate) SaveConfiguration(requesterRole string, cfg RolesConfiguration) error {
	if requesterRole != RoleSuperAdmin {
		return &PermissionDeniedError{Role: requesterRole, Module: ModuleSettings}
	}

	if err := g.repo.SaveConfiguration(cfg); err != nil {
		return err
	}

	g.Invalidate()
	return nil
}

// Invalidate drops the cached resolved configuration.
func (g *Gate) Invalidate() {
	g.mu.Lock()
	g.resolved = nil
	g.mu.Unlock()
}
