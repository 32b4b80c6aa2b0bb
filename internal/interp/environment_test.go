package interp_test

import (
	"testing"

	"github.com/spietras/timon-interpreter/internal/interp"
	"github.com/spietras/timon-interpreter/internal/values"
)

func TestEnvironmentScopeShadowing(t *testing.T) {
	env := interp.NewEnvironment()
	env.DeclareVarWithValue("x", values.Integer(1))

	env.PushScope()
	env.DeclareVarWithValue("x", values.Integer(2))
	v, err := env.GetVar("x")
	if err != nil || v.(values.Integer) != 2 {
		t.Fatalf("got %v, %v, want 2, nil", v, err)
	}
	if err := env.PopScope(); err != nil {
		t.Fatalf("PopScope: %v", err)
	}

	v, err = env.GetVar("x")
	if err != nil || v.(values.Integer) != 1 {
		t.Fatalf("got %v, %v, want 1, nil", v, err)
	}
}

func TestEnvironmentPoppingGlobalScopeErrors(t *testing.T) {
	env := interp.NewEnvironment()
	if err := env.PopScope(); err == nil {
		t.Fatal("expected an error popping the global scope")
	}
}

func TestEnvironmentUndeclaredVarErrors(t *testing.T) {
	env := interp.NewEnvironment()
	if _, err := env.GetVar("missing"); err == nil {
		t.Fatal("expected an undeclared variable error")
	}
}

func TestEnvironmentUninitializedVarErrors(t *testing.T) {
	env := interp.NewEnvironment()
	env.DeclareVar("x")
	if _, err := env.GetVar("x"); err == nil {
		t.Fatal("expected an uninitialized variable error")
	}
}
