package settings

import (
	"errors"
	"testing"

	"github.com/Winipedia/winidjango/internal/testutil/testlog"
)

func TestConfigureFirstCallWins(t *testing.T) {
	testlog.Start(t)
	s := New()
	if s.IsConfigured() {
		t.Fatalf("fresh settings should be unconfigured")
	}

	if err := s.Configure(TestDefaults()); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if !s.IsConfigured() {
		t.Fatalf("settings should report configured")
	}

	second := TestDefaults()
	second.InstalledApps = []string{"other"}
	if err := s.Configure(second); !errors.Is(err, ErrAlreadyConfigured) {
		t.Fatalf("expected ErrAlreadyConfigured, got %v", err)
	}
	if apps := s.InstalledApps(); len(apps) != 1 || apps[0] != "tests" {
		t.Fatalf("second configure changed options: %v", apps)
	}
}

func TestConfigureValidatesOptions(t *testing.T) {
	testlog.Start(t)
	cases := []Options{
		{},
		{Databases: map[string]DatabaseOptions{"replica": {Engine: EngineSQLite, Name: MemoryName}}},
		{Databases: map[string]DatabaseOptions{DefaultAlias: {Engine: EngineSQLite}}},
		{Databases: map[string]DatabaseOptions{DefaultAlias: {Engine: "postgres", Name: "app"}}},
	}
	for i, opts := range cases {
		s := New()
		if err := s.Configure(opts); !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("case %d: expected ErrInvalidOptions, got %v", i, err)
		}
	}
}

func TestSetupOpensDefaultDatabase(t *testing.T) {
	testlog.Start(t)
	s := New()
	if err := s.Setup(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	if err := s.Configure(TestDefaults()); err != nil {
		t.Fatalf("configure: %v", err)
	}
	if err := s.Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	db, err := s.Database(DefaultAlias)
	if err != nil {
		t.Fatalf("database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if _, err := s.Database("replica"); !errors.Is(err, ErrUnknownDatabase) {
		t.Fatalf("expected ErrUnknownDatabase, got %v", err)
	}

	// second setup keeps the open handle
	if err := s.Setup(); err != nil {
		t.Fatalf("second setup: %v", err)
	}
	again, err := s.Database(DefaultAlias)
	if err != nil {
		t.Fatalf("database after second setup: %v", err)
	}
	if again != db {
		t.Fatalf("second setup replaced the handle")
	}
}

func TestOptionsCopyIsIndependent(t *testing.T) {
	testlog.Start(t)
	s := New()
	if err := s.Configure(TestDefaults()); err != nil {
		t.Fatalf("configure: %v", err)
	}

	opts := s.Options()
	opts.InstalledApps[0] = "mutated"
	opts.Databases[DefaultAlias] = DatabaseOptions{Engine: EngineSQLite, Name: "mutated"}

	fresh := s.Options()
	if fresh.InstalledApps[0] != "tests" {
		t.Fatalf("installed apps leaked: %v", fresh.InstalledApps)
	}
	if fresh.Databases[DefaultAlias].Name != MemoryName {
		t.Fatalf("database options leaked: %+v", fresh.Databases[DefaultAlias])
	}
}

func TestResetForTesting(t *testing.T) {
	testlog.Start(t)
	ResetForTesting()
	t.Cleanup(ResetForTesting)

	if Default().IsConfigured() {
		t.Fatalf("reset should leave settings unconfigured")
	}
	if err := Default().Configure(TestDefaults()); err != nil {
		t.Fatalf("configure: %v", err)
	}
	ResetForTesting()
	if Default().IsConfigured() {
		t.Fatalf("reset did not replace settings")
	}
}
