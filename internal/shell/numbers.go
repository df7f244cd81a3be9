package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gomsggw/gwadmin/internal/adapter"
	"github.com/gomsggw/gwadmin/internal/service"
	"github.com/gomsggw/gwadmin/models"
)

func (s *Shell) listClientNumbers(ctx context.Context, username string) {
	fmt.Fprintln(s.out, titleStyle.Render(fmt.Sprintf("\n=== Numbers for '%s' ===", username)))

	client, err := s.services.Clients.FindByUsername(ctx, username)
	if err != nil {
		s.printOpError("Failed to look up client", err)
		return
	}
	if client == nil {
		fmt.Fprintf(s.out, "Client '%s' not found.\n", username)
		return
	}
	if len(client.Numbers) == 0 {
		fmt.Fprintln(s.out, "No numbers configured.")
		return
	}

	rows := make([][]string, 0, len(client.Numbers))
	for _, n := range client.Numbers {
		limit := "-"
		if n.SMSLimit > 0 {
			limit = strconv.Itoa(n.SMSLimit)
		}
		rows = append(rows, []string{n.Number, n.Carrier, orDash(n.Tag), orDash(n.Group), limit})
	}
	fmt.Fprint(s.out, renderTable([]string{"Number", "Carrier", "Tag", "Group", "Limit"}, rows))
}

// addNumbersFlow is menu option 9: shows the configured carriers as a
// reference list, collects a multi-line number batch, and adds the valid
// entries to the client.
func (s *Shell) addNumbersFlow(ctx context.Context, identifier string) {
	client, err := s.services.Clients.Find(ctx, identifier)
	if err != nil {
		s.printOpError("Failed to look up client", err)
		return
	}
	if client == nil {
		fmt.Fprintf(s.out, "Client '%s' not found.\n", identifier)
		return
	}

	fmt.Fprintln(s.out, "\nAvailable carriers (from gateway):")
	s.listCarriers(ctx)

	carrier, _ := s.prompter.Line("Carrier name (default: telnyx): ")
	if carrier == "" {
		carrier = "telnyx"
	}

	raw, err := s.prompter.Block("Enter numbers (comma-separated or one per line, Ctrl+D when done):")
	if err != nil {
		s.printError(fmt.Sprintf("❌ Could not read numbers: %v", err))
		return
	}

	numbers := s.parseAndReport(raw)
	if len(numbers) == 0 {
		fmt.Fprintln(s.out, "No valid numbers provided.")
		return
	}

	s.addNumbers(ctx, client, numbers, carrier)
	s.lastClient = identifier
}

// parseAndReport runs the batch parser and warns about every rejected
// fragment before returning the valid set.
func (s *Shell) parseAndReport(raw string) []string {
	valid, invalid := service.ParseNumberBatch(raw)
	if len(invalid) > 0 {
		fmt.Fprintln(s.out, "⚠️ These entries are invalid:")
		for _, bad := range invalid {
			fmt.Fprintf(s.out, "  - %s\n", bad)
		}
	}
	return valid
}

// addNumbers runs one batch add with live per-number feedback and prints
// the closing tally.
func (s *Shell) addNumbers(ctx context.Context, client *models.Client, numbers []string, carrier string) {
	fmt.Fprintln(s.out, titleStyle.Render(fmt.Sprintf("\n=== Add Numbers to '%s' (ID: %d) ===", client.Username, client.ID)))
	fmt.Fprintf(s.out, "  Client has %d existing numbers.\n", len(client.Numbers))

	report := s.services.Numbers.Add(ctx, client, numbers, carrier, true, func(res service.AddResult) {
		switch res.Outcome {
		case service.OutcomeAdded:
			fmt.Fprintf(s.out, "  %s: ✅ added\n", res.Number)
		case service.OutcomeSkipped:
			if res.Err != nil {
				// The gateway itself reported the duplicate.
				fmt.Fprintf(s.out, "  %s: ⏭️ already exists\n", res.Number)
			} else {
				fmt.Fprintf(s.out, "  %s: ⏭️ already exists, skipping\n", res.Number)
			}
		case service.OutcomeFailed:
			if errors.Is(res.Err, adapter.ErrNetwork) {
				fmt.Fprintf(s.out, "  %s: ❌ network error: %v\n", res.Number, res.Err)
			} else if apiErr := adapter.AsAPIError(res.Err); apiErr != nil {
				fmt.Fprintf(s.out, "  %s: ❌ failed (%d) -> %s\n", res.Number, apiErr.StatusCode, apiErr.Message)
			} else {
				fmt.Fprintf(s.out, "  %s: ❌ failed: %v\n", res.Number, res.Err)
			}
		}
	})

	fmt.Fprintf(s.out, "\nDone: %d added, %d skipped, %d failed\n", report.Added, report.Skipped, report.Failed)
}
