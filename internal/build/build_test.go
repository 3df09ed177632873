package build

import "testing"

func TestVersionFallsBackToEmbeddedFile(t *testing.T) {
	saved := version
	defer func() { version = saved }()

	version = ""
	if got := Version(); got == "" {
		t.Fatal("expected embedded VERSION to be non-empty")
	}

	version = "9.9.9"
	if got := Version(); got != "9.9.9" {
		t.Errorf("Version() = %q, want ldflags override 9.9.9", got)
	}
}
