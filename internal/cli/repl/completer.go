package repl

import "strings"

// Completer suggests shell commands for a prefix.
type Completer struct {
	commands []string
}

// NewCompleter creates a Completer for the built-in commands.
func NewCompleter() *Completer {
	return &Completer{
		commands: []string{":help", ":history", "exit", "quit"},
	}
}

// Commands lists every known command.
func (c *Completer) Commands() []string {
	return append([]string(nil), c.commands...)
}

// Complete returns the commands starting with prefix. When none does, it
// falls back to the commands sharing the first two characters of prefix.
func (c *Completer) Complete(prefix string) []string {
	var out []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			out = append(out, cmd)
		}
	}
	if len(out) > 0 || len(prefix) < 2 {
		return out
	}
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix[:2]) {
			out = append(out, cmd)
		}
	}
	return out
}
