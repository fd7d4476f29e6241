package preset

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Loader parses raw preset bytes into a Spec.
type Loader func(data []byte) (*Spec, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Loader)
)

// Register installs a loader under a preset type name (for example
// "cooke_ana_i_s35"). Later registrations under the same name replace
// earlier ones. Safe for concurrent use.
func Register(name string, loader Loader) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = loader
}

// Load parses preset data with the loader registered under name.
func Load(name string, data []byte) (*Spec, error) {
	registryMu.RLock()
	loader, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Errorf("no lens loader registered for %q", name)
	}
	return loader(data)
}

// Names returns the registered preset type names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	// The JSON schema is shared across front-anamorphic primes; the
	// Cooke loader is plain FromJSON.
	Register("cooke_ana_i_s35", FromJSON)
}
