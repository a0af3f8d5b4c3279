package registry

import (
	"testing"

	"github.com/vovakirdan/tetris-cube/internal/core"
)

type stubGame struct{}

func (stubGame) ID() string { return "stub" }
func (stubGame) Title() string { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen) {}
func (stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func() Game { return stubGame{} })

	g, err := Create("stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub" {
		t.Errorf("ID = %q, expected stub", g.ID())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Game { return stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup", func() Game { return stubGame{} })
}
