package component

import (
	"fmt"
	"sync"

	"github.com/gogpu/artist"
)

// Config identifies one registered (API, Profile) pair.
type Config struct {
	API     artist.API
	Profile artist.Profile
}

// registry holds validated component sets.
var (
	registryMu sync.RWMutex
	sets       = make(map[Config]*Set)
)

// Register validates the set and associates it with the (api, profile) pair.
// This is typically called from init() functions in adapter packages.
// An invalid set is rejected with artist.ErrConfiguration naming the missing
// roles. Re-registering a pair replaces the previous set.
func Register(api artist.API, profile artist.Profile, s *Set) error {
	if err := Validate(s); err != nil {
		return fmt.Errorf("register %s/%s: %w", api, profile, err)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	sets[Config{api, profile}] = s
	return nil
}

// MustRegister is Register that panics on an invalid set. Adapters use it in
// init() so an incomplete back-end stops the process before first use.
func MustRegister(api artist.API, profile artist.Profile, s *Set) {
	if err := Register(api, profile, s); err != nil {
		panic(err)
	}
}

// Unregister removes a pair from the registry. This is useful for testing.
func Unregister(api artist.API, profile artist.Profile) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(sets, Config{api, profile})
}

// Registered checks whether a component set exists for the pair.
func Registered(api artist.API, profile artist.Profile) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := sets[Config{api, profile}]
	return ok
}

// Available returns the registered (API, Profile) pairs.
func Available() []Config {
	registryMu.RLock()
	defer registryMu.RUnlock()

	configs := make([]Config, 0, len(sets))
	for c := range sets {
		configs = append(configs, c)
	}
	return configs
}

// Resolve returns the component set for the pair. An unregistered pair is
// artist.ErrConfiguration: entity constructors call Resolve, so no entity of
// an unvalidated configuration can be built.
func Resolve(api artist.API, profile artist.Profile) (*Set, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := sets[Config{api, profile}]
	if !ok {
		return nil, fmt.Errorf("%w: no component set registered for %s/%s",
			artist.ErrConfiguration, api, profile)
	}
	return s, nil
}
