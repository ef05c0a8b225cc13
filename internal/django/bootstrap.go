package django

import (
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Winipedia/winidjango/internal/django/settings"
)

// Bootstrap prepares the process for running this package in isolation:
// it applies the stubs compatibility patch and, only when no settings
// are configured yet, installs the minimal in-memory test configuration
// before running setup. Inside a host application that has already
// configured settings, the configuration step is a no-op.
func Bootstrap() error {
	PatchStubs()

	s := settings.Default()
	if !s.IsConfigured() {
		log.Info().Msg("configuring minimal django settings")
		err := s.Configure(settings.TestDefaults())
		if err != nil && !errors.Is(err, settings.ErrAlreadyConfigured) {
			return err
		}
	}
	return s.Setup()
}
