package repl

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func newTestREPL(t *testing.T, input string) (*REPL, *strings.Builder, *[]string) {
	t.Helper()
	var out strings.Builder
	var evaluated []string
	r := New(strings.NewReader(input), &out, func(line string) error {
		evaluated = append(evaluated, line)
		if line == "fail" {
			return errors.New("eval failed")
		}
		return nil
	}, WithHistory(NewHistory(filepath.Join(t.TempDir(), "history"))))
	return r, &out, &evaluated
}

func TestREPL_Run_Exit(t *testing.T) {
	for name, input := range map[string]string{
		"exit": "exit\n#after\n",
		"quit": "quit\n#after\n",
		"EOF":  "",
	} {
		t.Run(name, func(t *testing.T) {
			r, _, evaluated := newTestREPL(t, input)
			if err := r.Run(); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(*evaluated) != 0 {
				t.Errorf("evaluated %v after exit", *evaluated)
			}
		})
	}
}

func TestREPL_Run_Eval(t *testing.T) {
	r, out, evaluated := newTestREPL(t, "#rust is #awesome\n\n   \nfail\nlast line without newline")
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"#rust is #awesome", "fail", "last line without newline"}
	if strings.Join(*evaluated, "|") != strings.Join(want, "|") {
		t.Errorf("evaluated = %q, want %q", *evaluated, want)
	}
	if !strings.Contains(out.String(), "error: eval failed") {
		t.Errorf("output missing eval error:\n%s", out.String())
	}
	if !strings.HasPrefix(out.String(), DefaultPrompt) {
		t.Errorf("output should start with the prompt: %q", out.String())
	}
}

func TestREPL_Commands(t *testing.T) {
	r, out, evaluated := newTestREPL(t, "#one\n:history\n:help\n:hist\n:nope\n")
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(*evaluated) != 1 {
		t.Errorf("commands reached eval: %v", *evaluated)
	}

	o := out.String()
	for _, want := range []string{
		"   1  #one",
		"Commands: :help :history exit quit",
		"unknown command :hist, did you mean :history?",
		"unknown command :nope, try :help",
	} {
		if !strings.Contains(o, want) {
			t.Errorf("output missing %q:\n%s", want, o)
		}
	}
}

func TestREPL_ColonText(t *testing.T) {
	r, out, evaluated := newTestREPL(t, ":) #happy
:smile: #joy
:help me #now
:x
")
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{":) #happy", ":smile: #joy", ":help me #now"}
	if strings.Join(*evaluated, "|") != strings.Join(want, "|") {
		t.Errorf("evaluated = %q, want %q", *evaluated, want)
	}
	if !strings.Contains(out.String(), "unknown command :x") {
		t.Errorf("output missing unknown command error:\n%s", out.String())
	}
}

func TestIsCommandWord(t *testing.T) {
	tests := map[string]bool{
		":help":    true,
		":History": true,
		":":        false,
		":)":       false,
		":smile:":  false,
		"help":     false,
		":a b":     false,
		"":         false,
	}
	for in, want := range tests {
		if got := isCommandWord(in); got != want {
			t.Errorf("isCommandWord(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestREPL_WithPrompt(t *testing.T) {
	var out strings.Builder
	r := New(strings.NewReader("exit\n"), &out, func(string) error { return nil },
		WithPrompt("> "), WithHistory(nil))
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.String() != "> " {
		t.Errorf("output = %q, want %q", out.String(), "> ")
	}
}

func TestREPL_PersistsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	eval := func(string) error { return nil }

	r := New(strings.NewReader("#first\n#second\n"), &strings.Builder{}, eval, WithHistory(NewHistory(path)))
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if h.Len() != 2 || h.Get(0) != "#second" {
		t.Errorf("loaded history = %v", h.Entries())
	}
}
