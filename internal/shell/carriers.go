package shell

import (
	"context"
	"fmt"

	"github.com/gomsggw/gwadmin/models"
)

// listCarriers prints the carrier table and returns the raw collection so
// the number-adding flows can reuse it as a reference list.
func (s *Shell) listCarriers(ctx context.Context) []models.Carrier {
	fmt.Fprintln(s.out, titleStyle.Render("\n=== All Carriers ==="))

	carriers, err := s.services.Carriers.List(ctx)
	if err != nil {
		s.printOpError("Failed to list carriers", err)
		return nil
	}
	if len(carriers) == 0 {
		fmt.Fprintln(s.out, "No carriers found.")
		return carriers
	}

	rows := make([][]string, 0, len(carriers))
	for _, c := range carriers {
		active := "✅"
		if !c.Active {
			active = "❌"
		}
		rows = append(rows, []string{
			c.Name,
			string(c.Type),
			active,
			limitOrUnlimited(c.SMSLimit),
			limitOrUnlimited(c.MMSLimit),
		})
	}
	fmt.Fprint(s.out, renderTable([]string{"Name", "Type", "Active", "SMS Limit", "MMS Limit"}, rows))
	fmt.Fprintf(s.out, "\nTotal: %d carriers\n", len(carriers))

	return carriers
}

// createCarrier walks the operator through a new carrier record and
// returns the created name, or "" when nothing was created.
func (s *Shell) createCarrier(ctx context.Context) string {
	fmt.Fprintln(s.out, titleStyle.Render("\n=== Create New Carrier ==="))

	name, err := s.prompter.Line("Carrier Name (e.g., telnyx_prod): ")
	if err != nil || name == "" {
		s.printError("Name is required.")
		return ""
	}

	fmt.Fprintln(s.out, "\nCarrier Type:")
	for i, t := range models.CarrierTypes {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, t)
	}
	typeChoice, _ := s.prompter.Line("Choose [1-4, default=1]: ")
	carrierType := models.CarrierTelnyx
	if idx := parseIntDefault(typeChoice, 1); idx >= 1 && idx <= len(models.CarrierTypes) {
		carrierType = models.CarrierTypes[idx-1]
	}

	fmt.Fprintf(s.out, "\nEnter %s credentials:\n", carrierType)
	var username, password string
	switch carrierType {
	case models.CarrierTelnyx:
		username, _ = s.prompter.Line("API Key: ")
		password, _ = s.prompter.Line("API Secret (or leave blank): ")
	case models.CarrierTwilio:
		username, _ = s.prompter.Line("Account SID: ")
		password, _ = s.prompter.Secret("Auth Token: ")
	default:
		username, _ = s.prompter.Line("Username/API Key: ")
		password, _ = s.prompter.Secret("Password/Secret: ")
	}

	smsInput, _ := s.prompter.Line(fmt.Sprintf("SMS Size Limit bytes (default: %d): ", models.DefaultSMSLimit))
	mmsInput, _ := s.prompter.Line(fmt.Sprintf("MMS Size Limit bytes (default: %d): ", models.DefaultMMSLimit))

	carrier := models.Carrier{
		Name:     name,
		Type:     carrierType,
		Username: username,
		Password: password,
		SMSLimit: parseIntDefault(smsInput, models.DefaultSMSLimit),
		MMSLimit: parseIntDefault(mmsInput, models.DefaultMMSLimit),
	}

	if err := s.services.Carriers.Create(ctx, carrier); err != nil {
		s.printOpError("Failed to create carrier", err)
		return ""
	}

	fmt.Fprintf(s.out, "✅ Carrier created: %s (%s)\n", name, carrierType)
	return name
}

func (s *Shell) reloadCarriers(ctx context.Context) {
	if err := s.services.Carriers.Reload(ctx); err != nil {
		s.printOpError("Carrier reload failed", err)
		return
	}
	fmt.Fprintln(s.out, "✅ Carriers reloaded.")
}
