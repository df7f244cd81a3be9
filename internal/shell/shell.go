// SPDX-License-Identifier: Apache-2.0

// Package shell implements the interactive menu loop of the gateway admin
// client. It owns all console I/O: the services layer returns data and
// errors, the shell prompts, renders, and keeps the single piece of
// session state — the most recently touched client, offered as a default
// whenever an identifier prompt is left blank.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gomsggw/gwadmin/internal/adapter"
	"github.com/gomsggw/gwadmin/internal/logger"
	"github.com/gomsggw/gwadmin/internal/service"
)

// Shell drives one interactive admin session.
type Shell struct {
	services *service.Services
	prompter Prompter
	out      io.Writer
	log      *logger.Logger

	baseURL    string
	lastClient string
}

func New(services *service.Services, prompter Prompter, out io.Writer, baseURL string, log *logger.Logger) *Shell {
	return &Shell{
		services: services,
		prompter: prompter,
		out:      out,
		baseURL:  baseURL,
		log:      log,
	}
}

// Run loops over the menu until the operator exits or input reaches EOF.
// Interrupt signals are handled by the caller; Run itself never panics on
// a failed operation — every failure is printed and the menu comes back.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.renderMenu()

		choice, err := s.prompter.Line("\n> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out, "Bye!")
				return nil
			}
			return fmt.Errorf("read menu choice: %w", err)
		}

		if s.dispatch(ctx, strings.ToLower(choice)) {
			return nil
		}
	}
}

func (s *Shell) renderMenu() {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, line)
	fmt.Fprintln(s.out, titleStyle.Render(center(" GOMSGGW Manager ", 60, '=')))
	fmt.Fprintln(s.out, line)
	fmt.Fprintf(s.out, "Base URL: %s\n", s.baseURL)
	if s.lastClient != "" {
		fmt.Fprintf(s.out, "Last client: %s\n", s.lastClient)
	}

	fmt.Fprintln(s.out, "\n📡 Carriers:")
	fmt.Fprintln(s.out, "  1) List carriers")
	fmt.Fprintln(s.out, "  2) Add carrier")

	fmt.Fprintln(s.out, "\n📋 Clients:")
	fmt.Fprintln(s.out, "  3) List clients")
	fmt.Fprintln(s.out, "  4) Show client details")
	fmt.Fprintln(s.out, "  5) Create client")
	fmt.Fprintln(s.out, "  6) Update client settings")
	fmt.Fprintln(s.out, "  7) Change client password")

	fmt.Fprintln(s.out, "\n📞 Numbers:")
	fmt.Fprintln(s.out, "  8) List client numbers")
	fmt.Fprintln(s.out, "  9) Add numbers to client")

	fmt.Fprintln(s.out, "\n⚙️ Admin:")
	fmt.Fprintln(s.out, "  r) Reload all (clients + carriers)")
	fmt.Fprintln(s.out, "  q) Quick flow: create client → add numbers → reload")

	fmt.Fprintln(s.out, "\n  0) Exit")
	fmt.Fprintln(s.out, helpStyle.Render("  (blank client prompts reuse the last client)"))
}

// dispatch runs one menu selection. It returns true when the session
// should end.
func (s *Shell) dispatch(ctx context.Context, choice string) bool {
	switch choice {
	case "1":
		s.listCarriers(ctx)
	case "2":
		s.createCarrier(ctx)
	case "3":
		s.listClients(ctx)
	case "4":
		if identifier, ok := s.promptIdentifier("Client username: "); ok {
			s.showClientDetails(ctx, identifier)
		}
	case "5":
		if created := s.createClient(ctx); created != "" {
			s.lastClient = created
		}
	case "6":
		if identifier, ok := s.promptIdentifier("Client ID or username: "); ok {
			s.updateClientSettings(ctx, identifier)
		}
	case "7":
		if identifier, ok := s.promptIdentifier("Client ID or username: "); ok {
			s.changeClientPassword(ctx, identifier)
		}
	case "8":
		if identifier, ok := s.promptIdentifier("Client ID or username: "); ok {
			s.listClientNumbers(ctx, identifier)
		}
	case "9":
		if identifier, ok := s.promptIdentifier("Client ID or username: "); ok {
			s.addNumbersFlow(ctx, identifier)
		}
	case "r":
		s.reloadAll(ctx)
	case "q":
		s.quickFlow(ctx)
	case "0":
		fmt.Fprintln(s.out, "Bye!")
		return true
	default:
		fmt.Fprintln(s.out, "Invalid choice.")
	}
	return false
}

// promptIdentifier asks for a client id/username, falling back to the last
// touched client on blank input.
func (s *Shell) promptIdentifier(label string) (string, bool) {
	identifier, err := s.prompter.Line(label)
	if err != nil {
		return "", false
	}
	if identifier == "" {
		identifier = s.lastClient
	}
	if identifier == "" {
		s.printError("Client ID or username required.")
		return "", false
	}
	return identifier, true
}

func (s *Shell) printError(msg string) {
	fmt.Fprintln(s.out, errorStyle.Render(msg))
}

// printOpError renders one failed operation: network faults get their own
// wording, gateway refusals show the status code and the parsed body.
func (s *Shell) printOpError(what string, err error) {
	if errors.Is(err, adapter.ErrNetwork) {
		s.printError(fmt.Sprintf("Network error: %v", err))
		return
	}
	if apiErr := adapter.AsAPIError(err); apiErr != nil {
		s.printError(fmt.Sprintf("❌ %s (%d)", what, apiErr.StatusCode))
		fmt.Fprintln(s.out, apiErr.Message)
		return
	}
	s.printError(fmt.Sprintf("❌ %s: %v", what, err))
}

// parseIntDefault parses an optional numeric answer; blank or unparsable
// input yields the default.
func parseIntDefault(input string, def int) int {
	if input == "" {
		return def
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return def
	}
	return n
}

func center(s string, width int, pad rune) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), right)
}
