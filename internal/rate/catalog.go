package rate

import (
	"slices"
	"sync"
)

// Catalog is the set of currency codes offered to users, captured from the base
// currency's rate table at load time.
type Catalog struct {
	mu     sync.RWMutex
	loaded bool
	codes  []string            // provider order
	set    map[string]struct{} // same codes, for lookups
}

func NewCatalog() *Catalog {
	return &Catalog{set: map[string]struct{}{}}
}

// Replace publishes a freshly loaded code list.
func (c *Catalog) Replace(codes []string) {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.codes = slices.Clone(codes)
	c.set = set
	c.loaded = true
}

func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Catalog) SupportedCodes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.codes)
}

func (c *Catalog) Contains(code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.set[code]
	return ok
}

// ValidateCodes checks presence of both codes, and membership once the catalog is loaded.
func (c *Catalog) ValidateCodes(source, target string) error {
	if source == "" {
		return ErrSourceRequired
	}
	if target == "" {
		return ErrTargetRequired
	}
	if !c.Loaded() {
		return nil
	}
	if !c.Contains(source) {
		return ErrSourceUnsupported
	}
	if !c.Contains(target) {
		return ErrTargetUnsupported
	}
	return nil
}
