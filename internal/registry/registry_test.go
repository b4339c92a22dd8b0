package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/huematch/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", "second", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", "first", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false, expected true")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Create() returned game %q, expected stub_a", g.ID())
	}

	info, ok := Lookup("stub_b")
	if !ok || info.Title != "Stub stub_b" || info.Description != "second" {
		t.Errorf("Lookup(stub_b) = %+v, %v", info, ok)
	}

	// List keeps registration order
	var ids []string
	for _, gi := range List() {
		if gi.ID == "stub_a" || gi.ID == "stub_b" {
			ids = append(ids, gi.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "stub_b" || ids[1] != "stub_a" {
		t.Errorf("List() order = %v, expected [stub_b stub_a]", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", "", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", "", func() Game { return &stubGame{id: "stub_dup"} })
}
