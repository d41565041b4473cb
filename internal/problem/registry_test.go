package problem

import (
	"errors"
	"testing"
)

func TestRegistryConstructsEveryVariant(t *testing.T) {
	cfg := NewConfig(map[string]any{
		"input_length": 3,
		"epsilon":      0.0,
		"graph_length": 20,
	})
	for _, name := range Names() {
		p, err := New(name, cfg)
		if err != nil {
			t.Fatalf("new %s: %v", name, err)
		}
		if p.Name() != name {
			t.Fatalf("constructed %q for requested %q", p.Name(), name)
		}
	}
}

func TestRegistryNormalizesAliases(t *testing.T) {
	cfg := NewConfig(map[string]any{"input_length": 2, "epsilon": 0.0})
	for _, alias := range []string{"Binary_Multiply", "multiply", "BINARY-MULTIPLY"} {
		p, err := New(alias, cfg)
		if err != nil {
			t.Fatalf("new %q: %v", alias, err)
		}
		if p.Name() != "binary-multiply" {
			t.Fatalf("alias %q resolved to %q", alias, p.Name())
		}
	}
}

func TestRegistryRejectsUnknownProblem(t *testing.T) {
	_, err := New("nonesuch", NewConfig(nil))
	if !errors.Is(err, ErrUnsupportedProblem) {
		t.Fatalf("expected ErrUnsupportedProblem, got %v", err)
	}
}

func TestRegistryFailsFastOnMissingParameters(t *testing.T) {
	cases := []struct {
		name string
	}{
		{"binary-multiply"},
		{"breadth"},
		{"depth"},
		{"active"},
	}
	for _, c := range cases {
		if _, err := New(c.name, NewConfig(nil)); !errors.Is(err, ErrMissingParameter) {
			t.Fatalf("%s with empty config: expected ErrMissingParameter, got %v", c.name, err)
		}
	}
}
