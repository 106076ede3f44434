package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultPrompt is shown before each line.
const DefaultPrompt = "hashtag> "

// EvalFunc handles one input line.
type EvalFunc func(line string) error

// REPL is a read-eval-print loop over an input and an output.
type REPL struct {
	input     io.Reader
	output    io.Writer
	prompt    string
	eval      EvalFunc
	completer *Completer
	history   *History
}

// Option configures a REPL.
type Option func(*REPL)

// WithPrompt replaces DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(r *REPL) {
		r.prompt = prompt
	}
}

// WithHistory sets the history store. A nil store disables history.
func WithHistory(h *History) Option {
	return func(r *REPL) {
		r.history = h
	}
}

// New creates a REPL that passes input lines to eval.
func New(in io.Reader, out io.Writer, eval EvalFunc, opts ...Option) *REPL {
	r := &REPL{
		input:     in,
		output:    out,
		prompt:    DefaultPrompt,
		eval:      eval,
		completer: NewCompleter(),
		history:   NewHistory(DefaultHistoryFile()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run loops until exit, quit or end of input. History is loaded before
// the first prompt and saved on return.
func (r *REPL) Run() (err error) {
	if r.history != nil {
		if err := r.history.Load(); err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		defer func() {
			if saveErr := r.history.Save(); saveErr != nil && err == nil {
				err = fmt.Errorf("save history: %w", saveErr)
			}
		}()
	}

	reader := bufio.NewReader(r.input)
	for {
		fmt.Fprint(r.output, r.prompt)

		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return readErr
		}
		if readErr == io.EOF && line == "" {
			fmt.Fprintln(r.output)
			return nil
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			if readErr == io.EOF {
				return nil
			}
			continue
		}

		if r.history != nil {
			r.history.Add(line)
		}

		switch strings.TrimSpace(line) {
		case "exit", "quit":
			return nil
		}

		if err := r.execute(line); err != nil {
			fmt.Fprintf(r.output, "error: %v\n", err)
		}
		if readErr == io.EOF {
			return nil
		}
	}
}

// execute runs line as a command when it is a single word of the form
// ":name". Any other line, ":) #happy" included, is evaluated as text.
func (r *REPL) execute(line string) error {
	name := strings.TrimSpace(line)
	if !isCommandWord(name) {
		return r.eval(line)
	}

	switch name {
	case ":help":
		fmt.Fprintln(r.output, "Type text to list its hashtags.")
		fmt.Fprintln(r.output, "Commands: "+strings.Join(r.completer.Commands(), " "))
		fmt.Fprintln(r.output, "A line that is only :name is a command; other lines starting with ':' are scanned.")
		return nil
	case ":history":
		if r.history == nil {
			return nil
		}
		for i, entry := range r.history.Entries() {
			fmt.Fprintf(r.output, "%4d  %s\n", i+1, entry)
		}
		return nil
	}

	if suggestions := r.completer.Complete(name); len(suggestions) > 0 {
		return fmt.Errorf("unknown command %s, did you mean %s?", name, strings.Join(suggestions, " or "))
	}
	return fmt.Errorf("unknown command %s, try :help", name)
}

// isCommandWord reports whether s is ':' followed by one or more ASCII
// letters and nothing else.
func isCommandWord(s string) bool {
	if len(s) < 2 || s[0] != ':' {
		return false
	}
	for _, b := range []byte(s[1:]) {
		if (b < 'a' || b > 'z') && (b < 'A' || b > 'Z') {
			return false
		}
	}
	return true
}
