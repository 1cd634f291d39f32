package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"labparse/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Logging:    config.LoggingConfig{Level: "error", Format: "text"},
		Classifier: config.ClassifierConfig{PrefixLen: 4096},
		Batch:      config.BatchConfig{MaxConcurrent: 2},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseOne_AutoDissolution(t *testing.T) {
	path := writeFile(t, "dissolution.csv",
		"Time Point,Vessel 1,Vessel 2,Vessel 3,Vessel 4,Vessel 5,Vessel 6\n5,1,2,3,4,5,6\n")

	env := parseOne(testConfig(), path, "auto")
	if !env.Success {
		t.Fatalf("envelope = %+v, want success", env)
	}
	if env.Format != "dissolution" {
		t.Errorf("Format = %q, want dissolution", env.Format)
	}
	if env.RunID == "" {
		t.Error("RunID is empty")
	}
}

func TestParseOne_ExplicitFormat(t *testing.T) {
	path := writeFile(t, "sizes.csv", "Batch,D10,D50,D90\nABC12-3D45,1,5,9\n")

	env := parseOne(testConfig(), path, "particle")
	if !env.Success {
		t.Fatalf("envelope = %+v, want success", env)
	}
	if env.Format != "particle" {
		t.Errorf("Format = %q, want particle", env.Format)
	}
}

func TestParseOne_ParseFailure(t *testing.T) {
	path := writeFile(t, "broken.csv",
		"Time Point,Vessel 1,Vessel 2,Vessel 3,Vessel 4,Vessel 5\n5,1,2,3,4,5\n")

	env := parseOne(testConfig(), path, "dissolution")
	if env.Success {
		t.Fatal("envelope reports success for a broken file")
	}
	if env.Error == nil || env.Error.Message != "expected 6 vessel columns, but found 5" {
		t.Errorf("Error = %+v", env.Error)
	}
}

func TestParseOne_UnknownFormat(t *testing.T) {
	path := writeFile(t, "sizes.csv", "Batch,D10,D50,D90\nA,1,5,9\n")

	env := parseOne(testConfig(), path, "spectrometry")
	if env.Success || env.Error == nil {
		t.Fatalf("envelope = %+v, want failure", env)
	}
}

func TestParseOne_MissingFile(t *testing.T) {
	env := parseOne(testConfig(), filepath.Join(t.TempDir(), "absent.csv"), "auto")
	if env.Success || env.Error == nil {
		t.Fatalf("envelope = %+v, want failure", env)
	}
}

func TestParseLimiter(t *testing.T) {
	lim := newParseLimiter(2)
	ctx := context.Background()

	if err := lim.acquire(ctx); err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if err := lim.acquire(ctx); err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if got := lim.activeCount(); got != 2 {
		t.Errorf("activeCount = %d, want 2", got)
	}

	// Third acquire must block until a slot frees; a cancelled context
	// unblocks it with an error instead.
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := lim.acquire(cancelled); err == nil {
		t.Error("acquire succeeded on a full limiter with a cancelled context")
		lim.release()
	}

	lim.release()
	if err := lim.acquire(ctx); err != nil {
		t.Fatalf("acquire after release: %v", err)
	}

	lim.release()
	lim.release()
	if got := lim.activeCount(); got != 0 {
		t.Errorf("activeCount = %d, want 0", got)
	}
}
