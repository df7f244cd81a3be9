package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gomsggw/gwadmin/internal/service"
	"github.com/gomsggw/gwadmin/models"
)

func (s *Shell) listClients(ctx context.Context) {
	fmt.Fprintln(s.out, titleStyle.Render("\n=== All Clients ==="))

	clients, err := s.services.Clients.List(ctx)
	if err != nil {
		s.printOpError("Failed to list clients", err)
		return
	}
	if len(clients) == 0 {
		fmt.Fprintln(s.out, "No clients found.")
		return
	}

	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Username,
			c.Name,
			string(c.TypeOrDefault()),
			limitOrInfinity(c.SMSLimit),
			strconv.Itoa(len(c.Numbers)),
		})
	}
	fmt.Fprint(s.out, renderTable([]string{"ID", "Username", "Name", "Type", "Limit", "Nums"}, rows))
	fmt.Fprintf(s.out, "\nTotal: %d clients\n", len(clients))
}

func (s *Shell) showClientDetails(ctx context.Context, identifier string) {
	fmt.Fprintln(s.out, titleStyle.Render("\n=== Client Details ==="))

	client, err := s.services.Clients.Find(ctx, identifier)
	if err != nil {
		s.printOpError("Failed to look up client", err)
		return
	}
	if client == nil {
		fmt.Fprintf(s.out, "Client '%s' not found.\n", identifier)
		return
	}

	fmt.Fprintf(s.out, "  ID: %d\n", client.ID)
	fmt.Fprintf(s.out, "  Username: %s\n", client.Username)
	fmt.Fprintf(s.out, "  Name: %s\n", orNA(client.Name))
	fmt.Fprintf(s.out, "  Type: %s\n", client.TypeOrDefault())
	fmt.Fprintf(s.out, "  Address: %s\n", orNA(client.Address))
	fmt.Fprintf(s.out, "  SMS Limit: %s\n", limitOrUnlimited(client.SMSLimit))

	if ws := client.WebSettings; ws != nil {
		apiFormat := ws.APIFormat
		if apiFormat == "" {
			apiFormat = models.APIFormatGeneric
		}
		retries := ws.WebhookRetries
		if retries == 0 {
			retries = models.DefaultWebhookRetries
		}
		timeout := ws.WebhookTimeoutSecs
		if timeout == 0 {
			timeout = models.DefaultWebhookTimeoutSecs
		}

		fmt.Fprintln(s.out, "\n  Web Settings:")
		fmt.Fprintf(s.out, "    API Format: %s\n", apiFormat)
		fmt.Fprintf(s.out, "    Default Webhook: %s\n", orNA(ws.DefaultWebhook))
		fmt.Fprintf(s.out, "    Webhook Retries: %d\n", retries)
		fmt.Fprintf(s.out, "    Timeout: %ds\n", timeout)
	}

	if len(client.Numbers) == 0 {
		fmt.Fprintln(s.out, "\n  No numbers configured.")
		return
	}

	fmt.Fprintf(s.out, "\n  Numbers (%d):\n", len(client.Numbers))
	for _, n := range client.Numbers {
		line := fmt.Sprintf("    - %s via %s", n.Number, n.Carrier)
		if n.Tag != "" {
			line += fmt.Sprintf(" [%s]", n.Tag)
		}
		if n.SMSLimit > 0 {
			line += fmt.Sprintf(" (limit: %d)", n.SMSLimit)
		}
		fmt.Fprintln(s.out, line)
	}
}

// createClient walks the operator through a new client account and returns
// the server-assigned id as a string for the last-client default, or ""
// when nothing was created.
func (s *Shell) createClient(ctx context.Context) string {
	fmt.Fprintln(s.out, titleStyle.Render("\n=== Create New Client ==="))

	username, err := s.prompter.Line("Username (e.g., tops_zultys): ")
	if err != nil || username == "" {
		s.printError("Username is required.")
		return ""
	}

	password, _ := s.prompter.Secret("Password (leave blank to auto-generate): ")
	if password == "" {
		password, err = service.GeneratePassword()
		if err != nil {
			s.printError(fmt.Sprintf("❌ Could not generate password: %v", err))
			return ""
		}
		s.printGeneratedPassword(password)
	}

	name, _ := s.prompter.Line("Display Name (company name): ")

	fmt.Fprintln(s.out, "\nClient Type:")
	fmt.Fprintln(s.out, "  1) legacy (SMPP/MM4 - for Zultys, etc.)")
	fmt.Fprintln(s.out, "  2) web (REST API/Webhooks - for Bicom, web apps)")
	typeChoice, _ := s.prompter.Line("Choose [1/2, default=1]: ")
	clientType := models.ClientLegacy
	if typeChoice == "2" {
		clientType = models.ClientWeb
	}

	var address string
	if clientType == models.ClientLegacy {
		address, _ = s.prompter.Line("Address (IP or hostname, REQUIRED for legacy): ")
		if address == "" {
			s.printError("❌ Address is required for legacy clients (used for SMPP ACL and MM4 delivery)")
			return ""
		}
	} else {
		address, _ = s.prompter.Line("Address (IP or hostname, optional): ")
	}

	limitInput, _ := s.prompter.Line("Daily SMS Limit (0 = unlimited): ")

	created, err := s.services.Clients.Create(ctx, models.Client{
		Username: username,
		Password: password,
		Name:     name,
		Type:     clientType,
		Address:  address,
		SMSLimit: parseIntDefault(limitInput, 0),
	})
	if err != nil {
		if errors.Is(err, service.ErrLegacyAddressRequired) {
			s.printError("❌ Address is required for legacy clients (used for SMPP ACL and MM4 delivery)")
			return ""
		}
		s.printOpError("Failed to create client", err)
		return ""
	}

	fmt.Fprintf(s.out, "✅ Client created: %s (ID: %d, Type: %s)\n", username, created.ID, clientType)
	return strconv.FormatInt(created.ID, 10)
}

func (s *Shell) updateClientSettings(ctx context.Context, identifier string) {
	client, err := s.services.Clients.Find(ctx, identifier)
	if err != nil {
		s.printOpError("Failed to look up client", err)
		return
	}
	if client == nil {
		fmt.Fprintf(s.out, "Client '%s' not found.\n", identifier)
		return
	}

	fmt.Fprintln(s.out, titleStyle.Render(fmt.Sprintf("\n=== Update Settings for '%s' (ID: %d) ===", client.Username, client.ID)))

	var update models.WebSettingsUpdate

	fmt.Fprintln(s.out, "\nAPI Format:")
	fmt.Fprintln(s.out, "  1) generic (default)")
	fmt.Fprintln(s.out, "  2) bicom (Bicom PBXware)")
	fmt.Fprintln(s.out, "  3) telnyx")
	formatChoice, _ := s.prompter.Line("Choose [1-3, leave blank to skip]: ")
	formats := map[string]models.APIFormat{
		"1": models.APIFormatGeneric,
		"2": models.APIFormatBicom,
		"3": models.APIFormatTelnyx,
	}
	if format, ok := formats[formatChoice]; ok {
		update.APIFormat = &format
	}

	if webhook, _ := s.prompter.Line("Default Webhook URL (leave blank to skip): "); webhook != "" {
		update.DefaultWebhook = &webhook
	}

	// Optional integers: unparsable input is silently ignored.
	if retriesInput, _ := s.prompter.Line("Webhook Retries (leave blank to skip): "); retriesInput != "" {
		if retries, err := strconv.Atoi(retriesInput); err == nil {
			update.WebhookRetries = &retries
		}
	}
	if timeoutInput, _ := s.prompter.Line("Webhook Timeout Seconds (leave blank to skip): "); timeoutInput != "" {
		if timeout, err := strconv.Atoi(timeoutInput); err == nil {
			update.WebhookTimeoutSecs = &timeout
		}
	}

	if update.IsEmpty() {
		fmt.Fprintln(s.out, "No settings to update.")
		return
	}

	if err := s.services.Clients.UpdateSettings(ctx, client.ID, update); err != nil {
		s.printOpError("Failed", err)
		return
	}
	fmt.Fprintln(s.out, "✅ Settings updated.")
}

func (s *Shell) changeClientPassword(ctx context.Context, identifier string) {
	client, err := s.services.Clients.Find(ctx, identifier)
	if err != nil {
		s.printOpError("Failed to look up client", err)
		return
	}
	if client == nil {
		fmt.Fprintf(s.out, "Client '%s' not found.\n", identifier)
		return
	}

	fmt.Fprintln(s.out, titleStyle.Render(fmt.Sprintf("\n=== Change Password for '%s' (ID: %d) ===", client.Username, client.ID)))

	newPassword, _ := s.prompter.Secret("New Password (leave blank to auto-generate): ")
	if newPassword == "" {
		newPassword, err = service.GeneratePassword()
		if err != nil {
			s.printError(fmt.Sprintf("❌ Could not generate password: %v", err))
			return
		}
		s.printGeneratedPassword(newPassword)
	}

	confirm, _ := s.prompter.Line("Confirm password change? [y/N]: ")
	if strings.ToLower(confirm) != "y" {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}

	if err := s.services.Clients.ChangePassword(ctx, client.ID, newPassword); err != nil {
		s.printOpError("Failed", err)
		return
	}
	fmt.Fprintln(s.out, "✅ Password updated successfully.")
}

func (s *Shell) printGeneratedPassword(password string) {
	fmt.Fprintln(s.out, "\n🔑 Generated password (save this now; it will not be shown again):")
	fmt.Fprintf(s.out, "  %s\n\n", password)
}

func (s *Shell) reloadClients(ctx context.Context) {
	if err := s.services.Clients.Reload(ctx); err != nil {
		s.printOpError("Client reload failed", err)
		return
	}
	fmt.Fprintln(s.out, "✅ Clients reloaded.")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
