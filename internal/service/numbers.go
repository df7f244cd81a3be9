package service

import (
	"context"
	"strings"

	"github.com/gomsggw/gwadmin/internal/adapter"
	"github.com/gomsggw/gwadmin/internal/logger"
	"github.com/gomsggw/gwadmin/models"
)

// AddOutcome classifies what happened to a single number during a batch
// add.
type AddOutcome int

const (
	// OutcomeAdded means the gateway accepted the number.
	OutcomeAdded AddOutcome = iota

	// OutcomeSkipped means the number was already provisioned, either
	// per the local snapshot or per the gateway's own answer.
	OutcomeSkipped

	// OutcomeFailed means the request failed for any other reason.
	OutcomeFailed
)

// AddResult is the outcome for one number of a batch, in input order.
type AddResult struct {
	Number  string
	Outcome AddOutcome

	// Err carries the failure for OutcomeFailed, or the gateway's
	// duplicate answer for a server-detected skip. Nil otherwise.
	Err error
}

// AddReport summarises one batch-add call.
type AddReport struct {
	Results []AddResult
	Added   int
	Skipped int
	Failed  int
}

// ProgressFunc receives each AddResult as soon as its outcome is decided,
// letting the shell print per-number feedback while the batch runs.
type ProgressFunc func(AddResult)

// NormalizeNumber strips every non-digit character from a raw entry.
func NormalizeNumber(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseNumberBatch splits a raw block on commas and newlines, trims
// whitespace, and drops empty fragments. Each remaining fragment is
// normalized and classified: 11-digit entries pass through, 10-digit
// entries are coerced to 11 by prefixing "1", anything else lands in
// invalid (reported as originally typed). Order is preserved and the batch
// is not deduplicated — duplicate handling belongs to Add.
func ParseNumberBatch(raw string) (valid []string, invalid []string) {
	fragments := strings.Split(strings.ReplaceAll(raw, "\n", ","), ",")

	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		normalized := NormalizeNumber(fragment)
		switch len(normalized) {
		case 11:
			valid = append(valid, normalized)
		case 10:
			valid = append(valid, "1"+normalized)
		default:
			invalid = append(invalid, fragment)
		}
	}

	return valid, invalid
}

type numberService struct {
	gateway adapter.GatewayAdapter
	log     *logger.Logger
}

func NewNumberService(gateway adapter.GatewayAdapter, log *logger.Logger) NumberService {
	return &numberService{gateway: gateway, log: log}
}

func (s *numberService) Add(ctx context.Context, client *models.Client, numbers []string, carrier string, skipExisting bool, progress ProgressFunc) AddReport {
	existing := make(map[string]struct{})
	if skipExisting {
		for _, n := range client.Numbers {
			existing[n.Number] = struct{}{}
		}
	}

	report := AddReport{Results: make([]AddResult, 0, len(numbers))}
	record := func(res AddResult) {
		report.Results = append(report.Results, res)
		switch res.Outcome {
		case OutcomeAdded:
			report.Added++
		case OutcomeSkipped:
			report.Skipped++
		case OutcomeFailed:
			report.Failed++
		}
		if progress != nil {
			progress(res)
		}
	}

	for _, num := range numbers {
		if _, ok := existing[num]; ok {
			record(AddResult{Number: num, Outcome: OutcomeSkipped})
			continue
		}

		err := s.gateway.AddClientNumber(ctx, client.ID, models.ClientNumber{
			Number:  num,
			Carrier: carrier,
		})
		switch {
		case err == nil:
			// Track within the batch so a repeated entry is caught
			// without another round trip.
			existing[num] = struct{}{}
			record(AddResult{Number: num, Outcome: OutcomeAdded})
		case adapter.IsAlreadyExists(err):
			// The gateway's idea of a duplicate wins over the
			// snapshot: another actor may have added the number
			// after we fetched the client.
			existing[num] = struct{}{}
			record(AddResult{Number: num, Outcome: OutcomeSkipped, Err: err})
		default:
			s.log.Error().Err(err).Str("number", num).Int64("client_id", client.ID).Msg("add number")
			record(AddResult{Number: num, Outcome: OutcomeFailed, Err: err})
		}
	}

	s.log.Info().
		Int64("client_id", client.ID).
		Int("added", report.Added).
		Int("skipped", report.Skipped).
		Int("failed", report.Failed).
		Msg("number batch processed")
	return report
}
