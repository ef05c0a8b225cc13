package rig

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	ErrProviderExists = errors.New("rig: provider already registered")
	ErrProviderNil    = errors.New("rig: provider is nil")
	ErrInvalidName    = errors.New("rig: invalid provider name")
)

// Registry stores providers by stable name. The toolkit resolves all
// registered providers at build time; registration order does not
// matter, listing order is deterministic.
type Registry struct {
	mu          sync.RWMutex
	configFiles map[string]ConfigFile
	tools       map[string]Tool
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		configFiles: make(map[string]ConfigFile),
		tools:       make(map[string]Tool),
	}
}

// RegisterConfigFile adds a config-file provider.
func (r *Registry) RegisterConfigFile(p ConfigFile) error {
	if p == nil {
		return ErrProviderNil
	}
	name := p.Name()
	if err := validateName(name); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.configFiles[name]; ok {
		return fmt.Errorf("%w: config file %q", ErrProviderExists, name)
	}
	r.configFiles[name] = p
	log.Debug().Str("provider", name).Msg("rig.Registry.RegisterConfigFile")
	return nil
}

// RegisterTool adds a tool provider.
func (r *Registry) RegisterTool(p Tool) error {
	if p == nil {
		return ErrProviderNil
	}
	name := p.Name()
	if err := validateName(name); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tools[name]; ok {
		return fmt.Errorf("%w: tool %q", ErrProviderExists, name)
	}
	r.tools[name] = p
	log.Debug().Str("provider", name).Msg("rig.Registry.RegisterTool")
	return nil
}

// LookupConfigFile returns a config-file provider by name.
func (r *Registry) LookupConfigFile(name string) (ConfigFile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.configFiles[name]
	return p, ok
}

// LookupTool returns a tool provider by name.
func (r *Registry) LookupTool(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.tools[name]
	return p, ok
}

// ConfigFiles returns all config-file providers ordered by name.
func (r *Registry) ConfigFiles() []ConfigFile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]ConfigFile, 0, len(r.configFiles))
	for _, p := range r.configFiles {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// Tools returns all tool providers ordered by name.
func (r *Registry) Tools() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]Tool, 0, len(r.tools))
	for _, p := range r.tools {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry consumed by the toolkit.
func Default() *Registry {
	return defaultRegistry
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if !isValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func isValidName(name string) bool {
	lastSep := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		isSep := c == '.' || c == '-' || c == '_'
		if !(isLower || isDigit || isSep) {
			return false
		}
		if (i == 0 || i == len(name)-1) && isSep {
			return false
		}
		if isSep && lastSep {
			return false
		}
		lastSep = isSep
	}
	return true
}
