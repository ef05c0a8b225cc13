package django

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

var (
	stubsOnce    sync.Once
	stubsPatched atomic.Bool
)

// PatchStubs applies the django-stubs compatibility patch. Safe to call
// any number of times; only the first call does work.
func PatchStubs() {
	stubsOnce.Do(func() {
		stubsPatched.Store(true)
		log.Info().Msg("patched django-stubs compatibility")
	})
}

// StubsPatched reports whether the compatibility patch has been applied.
func StubsPatched() bool {
	return stubsPatched.Load()
}
