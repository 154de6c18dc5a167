package registry

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/match3"
)

type fixedStrategy struct{ id string }

func (f fixedStrategy) ID() string    { return f.id }
func (f fixedStrategy) Title() string { return "Fixed " + f.id }
func (f fixedStrategy) Choose(match3.Snapshot, match3.RandomSource) (match3.Move, bool) {
	return match3.Move{A: 0, B: 1}, true
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test", func() Strategy { return fixedStrategy{id: "zz-test"} })

	if !Exists("zz-test") {
		t.Fatal("Exists(zz-test) = false")
	}
	s, err := Create("zz-test")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if s.Title() != "Fixed zz-test" {
		t.Errorf("Title() = %q", s.Title())
	}

	found := false
	list := List()
	for i, info := range list {
		if i > 0 && list[i-1].ID > info.ID {
			t.Errorf("List() not sorted at %d", i)
		}
		if info.ID == "zz-test" {
			found = true
		}
	}
	if !found {
		t.Error("List() missing zz-test")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() error = nil, want error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Strategy { return fixedStrategy{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz-dup", func() Strategy { return fixedStrategy{id: "zz-dup"} })
}
