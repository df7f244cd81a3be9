package shell

import (
	"context"
	"fmt"
	"strings"
)

// reloadAll reloads clients and then carriers, reporting each outcome
// independently — a failure in one never blocks the other.
func (s *Shell) reloadAll(ctx context.Context) {
	fmt.Fprintln(s.out, titleStyle.Render("\n=== Reload All ==="))
	s.reloadClients(ctx)
	s.reloadCarriers(ctx)
}

// quickFlow is the end-to-end onboarding shortcut: create a client, pick a
// carrier, add a number batch, then (by default) reload everything.
func (s *Shell) quickFlow(ctx context.Context) {
	created := s.createClient(ctx)
	if created == "" {
		return
	}
	s.lastClient = created

	fmt.Fprintln(s.out, "\nAvailable carriers:")
	s.listCarriers(ctx)

	carrier, _ := s.prompter.Line("Carrier name (default: telnyx): ")
	if carrier == "" {
		carrier = "telnyx"
	}

	raw, _ := s.prompter.Line("Comma-separated numbers: ")
	numbers := s.parseAndReport(raw)
	if len(numbers) == 0 {
		fmt.Fprintln(s.out, "No numbers provided; skipping.")
	} else {
		// The fresh record is fetched again so the add flow sees the
		// server's view of it, id included.
		client, err := s.services.Clients.Find(ctx, created)
		if err != nil {
			s.printOpError("Failed to look up client", err)
			return
		}
		if client == nil {
			fmt.Fprintf(s.out, "Client '%s' not found.\n", created)
			return
		}
		s.addNumbers(ctx, client, numbers, carrier)
	}

	answer, _ := s.prompter.Line("Reload all? [Y/n]: ")
	if strings.ToLower(answer) != "n" {
		s.reloadAll(ctx)
	}
}
