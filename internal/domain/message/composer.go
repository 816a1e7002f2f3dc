// Package message renders the plaintext messages sent to customers: the
// delivery confirmation shared after a record is saved and the expiry reminder.
package message

import (
	"fmt"
	"strings"
	"time"

	"warranty/internal/domain/entity"
	"warranty/internal/domain/expiry"
)

// Mode selects which message Compose renders.
type Mode int

const (
	// ModeInitial lists every product and service, for post-save sharing.
	ModeInitial Mode = iota
	// ModeReminder lists only coverage that has not expired yet.
	ModeReminder
)

const (
	defaultSubjectLabel      = "Your Purchase"
	installationSubjectLabel = "Installation Service"
	defaultCustomerName      = "Customer"
)

// String returns the query-string spelling of the mode.
func (m Mode) String() string {
	if m == ModeReminder {
		return "reminder"
	}

	return "initial"
}

// ParseMode reads a mode name; the empty string selects ModeInitial.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "initial", "share":
		return ModeInitial, true
	case "reminder", "notify":
		return ModeReminder, true
	default:
		return ModeInitial, false
	}
}

// Message is a composed message ready to be handed to a share channel.
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Compose renders the message for w. today decides which coverage counts as
// unexpired in reminder mode and is ignored in initial mode.
func Compose(w *entity.Warranty, mode Mode, today time.Time) Message {
	if mode == ModeReminder {
		return composeReminder(w, expiry.Midnight(today))
	}

	return composeInitial(w)
}

// FormatPeriod renders a period with its unit, singular for exactly one.
func FormatPeriod(period int, unit entity.PeriodUnit) string {
	unit = unit.OrDefault()
	if period == 1 {
		return fmt.Sprintf("%d %s", period, unit.Singular())
	}

	return fmt.Sprintf("%d %s", period, unit)
}

func composeInitial(w *entity.Warranty) Message {
	var sb strings.Builder
	writeGreeting(&sb, w)
	sb.WriteString("Thank you for your purchase. Here are your warranty details:\n")

	for i, p := range w.Products {
		sb.WriteString("\n")
		writeProduct(&sb, i+1, p, true)
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Services Provided: %s\n", w.ServicesProvided.Label())
	if w.ServicesProvided.Install {
		writeInstallation(&sb, w)
	}

	sb.WriteString("\nPlease keep this message for your warranty records.")

	subject := defaultSubjectLabel
	if name, ok := w.FirstProductName(); ok {
		subject = name
	}

	return Message{
		Subject: "Warranty Details for " + subject,
		Body:    sb.String(),
	}
}

func composeReminder(w *entity.Warranty, today time.Time) Message {
	var valid []entity.Product
	for _, p := range w.Products {
		if isUnexpired(p, today) {
			valid = append(valid, p)
		}
	}
	installValid := installationUnexpired(w, today)

	subject := defaultSubjectLabel
	switch {
	case len(valid) > 0:
		if name := strings.TrimSpace(valid[0].ProductName); name != "" {
			subject = name
		}
	case installValid:
		subject = installationSubjectLabel
	}

	var sb strings.Builder
	writeGreeting(&sb, w)

	if len(valid) == 0 && !installValid {
		sb.WriteString("This is a friendly reminder regarding your warranty records with us. ")
		sb.WriteString("Please contact us if you need any assistance with your products or services.")

		return Message{
			Subject: "Warranty Reminder for " + subject,
			Body:    sb.String(),
		}
	}

	sb.WriteString("This is a friendly reminder that the following warranty coverage is still active:\n")
	for i, p := range valid {
		sb.WriteString("\n")
		writeProduct(&sb, i+1, p, false)
	}
	if installValid {
		sb.WriteString("\n")
		sb.WriteString(installationSubjectLabel + "\n")
		writeInstallation(&sb, w)
	}

	sb.WriteString("\nPlease contact us before your warranty expires if you need any service or support.")

	return Message{
		Subject: "Warranty Reminder for " + subject,
		Body:    sb.String(),
	}
}

func isUnexpired(p entity.Product, today time.Time) bool {
	if p.ProductWarrantyPeriod <= 0 {
		return false
	}
	exp, ok := expiry.ProductExpiry(p)

	return ok && !exp.Before(today)
}

func installationUnexpired(w *entity.Warranty, today time.Time) bool {
	if w.InstallationWarrantyPeriod <= 0 {
		return false
	}
	exp, ok := expiry.InstallationExpiry(w)

	return ok && !exp.Before(today)
}

func writeGreeting(sb *strings.Builder, w *entity.Warranty) {
	name := strings.TrimSpace(w.CustomerName)
	if name == "" {
		name = defaultCustomerName
	}
	fmt.Fprintf(sb, "Dear %s,\n\n", name)
}

func writeProduct(sb *strings.Builder, n int, p entity.Product, withPurchase bool) {
	name := strings.TrimSpace(p.ProductName)
	if name == "" {
		name = "Unnamed product"
	}
	serial := strings.TrimSpace(p.SerialNumber)
	if serial == "" {
		serial = "N/A"
	}

	fmt.Fprintf(sb, "Product %d: %s\n", n, name)
	fmt.Fprintf(sb, "Serial Number: %s\n", serial)
	if withPurchase {
		fmt.Fprintf(sb, "Purchase Date: %s\n", expiry.FormatDateString(p.PurchaseDate))
	}
	fmt.Fprintf(sb, "Warranty Period: %s\n", FormatPeriod(p.ProductWarrantyPeriod.Int(), p.ProductWarrantyUnit))
	productExpiry, productOK := expiry.ProductExpiry(p)
	fmt.Fprintf(sb, "Warranty Expiry: %s\n", formatCoverageExpiry(p.ProductWarrantyPeriod.Int(), productExpiry, productOK))
}

func writeInstallation(sb *strings.Builder, w *entity.Warranty) {
	fmt.Fprintf(sb, "Installation Date: %s\n", expiry.FormatDateString(w.InstallDate))
	fmt.Fprintf(sb, "Installation Warranty: %s\n",
		FormatPeriod(w.InstallationWarrantyPeriod.Int(), w.InstallationWarrantyUnit))
	installExpiry, installOK := expiry.InstallationExpiry(w)
	fmt.Fprintf(sb, "Installation Warranty Expiry: %s\n",
		formatCoverageExpiry(w.InstallationWarrantyPeriod.Int(), installExpiry, installOK))

	location := w.Location()
	building := w.BuildingLabel()
	switch {
	case location != "" && building != "":
		fmt.Fprintf(sb, "Installation Address: %s (%s)\n", location, building)
	case location != "":
		fmt.Fprintf(sb, "Installation Address: %s\n", location)
	case building != "":
		fmt.Fprintf(sb, "Building Type: %s\n", building)
	}
}

// formatCoverageExpiry reads a zero period as "Does not expire", like the classifier.
func formatCoverageExpiry(period int, t time.Time, ok bool) string {
	if ok && period <= 0 {
		never := expiry.NeverExpires

		return expiry.FormatDate(&never)
	}

	return formatExpiry(t, ok)
}

func formatExpiry(t time.Time, ok bool) string {
	if !ok {
		return expiry.FormatDate(nil)
	}

	return expiry.FormatDate(&t)
}
