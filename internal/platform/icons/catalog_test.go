package icons

import (
	"strings"
	"testing"
)

func TestCatalogEntriesAreComplete(t *testing.T) {
	defs := catalog
	if len(defs) == 0 {
		t.Fatal("expected catalog to include icon definitions")
	}
	seen := make(map[string]struct{})
	for _, def := range defs {
		if _, ok := seen[def.Name]; ok {
			t.Errorf("duplicate icon name %q", def.Name)
		}
		seen[def.Name] = struct{}{}
		if strings.TrimSpace(def.Description) == "" {
			t.Errorf("icon %q missing description", def.Name)
		}
		if strings.TrimSpace(def.Body) == "" {
			t.Errorf("icon %q missing body", def.Name)
		}
	}
}

func TestKnownTrimsInput(t *testing.T) {
	if !Known(" search ") {
		t.Fatal("expected search to be known")
	}
	if Known("rocket") {
		t.Fatal("expected rocket to be unknown")
	}
}

func TestBodyOrDefaultFallsBackToSparkles(t *testing.T) {
	want, _ := Body(Sparkles)
	if got := BodyOrDefault("rocket"); got != want {
		t.Fatalf("BodyOrDefault(rocket) = %q, want sparkles body", got)
	}
	if got := BodyOrDefault(Calendar); !strings.Contains(got, `<rect width="18"`) {
		t.Fatalf("BodyOrDefault(calendar) = %q", got)
	}
}

func TestNamesAreSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
