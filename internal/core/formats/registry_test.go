package formats

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"labparse/internal/core"
)

func TestRegisteredKeys(t *testing.T) {
	want := []string{"dissolution", "mastersizer", "particle"}
	if diff := cmp.Diff(want, Keys()); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	def, ok := Get("dissolution")
	if !ok {
		t.Fatal("dissolution format not registered")
	}
	if def.Guess != core.FormatDissolution {
		t.Errorf("Guess = %v, want %v", def.Guess, core.FormatDissolution)
	}

	if _, ok := Get("nope"); ok {
		t.Error("Get returned a definition for an unknown key")
	}
}

func TestForGuess(t *testing.T) {
	def, ok := ForGuess(core.FormatParticleMultiSection)
	if !ok {
		t.Fatal("no definition for the multi-section guess")
	}
	if def.Key != "mastersizer" {
		t.Errorf("Key = %q, want mastersizer", def.Key)
	}

	if _, ok := ForGuess(core.FormatUnknown); ok {
		t.Error("ForGuess matched the unknown guess")
	}
}

func TestParseOutcome(t *testing.T) {
	def, _ := Get("dissolution")

	good := def.Parse("Time Point,Vessel 1,Vessel 2,Vessel 3,Vessel 4,Vessel 5,Vessel 6\n5,1,2,3,4,5,6\n")
	if !good.Success || good.Error != nil || good.Data == nil {
		t.Errorf("good outcome = %+v, want success with data", good)
	}

	bad := def.Parse("not,a,dissolution,file\n1,2,3,4\n")
	if bad.Success || bad.Error == nil || bad.Data != nil {
		t.Errorf("bad outcome = %+v, want failure with error", bad)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(Definition{Key: "dissolution"})
}
