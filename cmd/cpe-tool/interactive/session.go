// Package interactive provides the interactive parsing session for
// cpe-tool.
package interactive

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/cpe-tools/cpe-go/cmd/cpe-tool/commands"
	"github.com/cpe-tools/cpe-go/pkg/cpe"
)

// Session handles interactive mode for cpe-tool.
type Session struct {
	rl     *readline.Instance
	format string
	out    io.Writer
	errOut io.Writer
}

// New creates a new interactive session handler.
func New() (*Session, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "cpe> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Session{
		rl:     rl,
		format: "text",
		out:    rl.Stdout(),
		errOut: rl.Stderr(),
	}, nil
}

// Run reads and handles input until exit or EOF.
func (s *Session) Run() error {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}

		if !s.handleLine(line) {
			return nil
		}
	}
}

// handleLine processes one input line. It returns false when the
// session should end.
func (s *Session) handleLine(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	fields := strings.Fields(input)
	switch strings.ToLower(fields[0]) {
	case "exit", "quit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false

	case "help", "?":
		s.printHelp()
		return true

	case "format", "f":
		s.cmdFormat(fields[1:])
		return true
	}

	// Anything else is treated as a CPE string.
	wfn, err := cpe.Unbind(input)
	if err != nil {
		fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return true
	}

	if err := commands.RenderRecord(s.out, wfn, s.format); err != nil {
		fmt.Fprintf(s.errOut, "Error: %v\n", err)
	}
	return true
}

func (s *Session) cmdFormat(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "Current format: %s\n", s.format)
		return
	}

	switch args[0] {
	case "text", "json", "yaml":
		s.format = args[0]
		fmt.Fprintf(s.out, "Format set to %s\n", s.format)
	default:
		fmt.Fprintf(s.errOut, "Unknown format: %s (supported: text, json, yaml)\n", args[0])
	}
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `Enter a CPE 2.3 formatted string to parse it.

Commands:
  format [text|json|yaml]  Show or set the output format
  help, ?                  Show this help
  exit, quit               End the session`)
}
