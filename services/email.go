package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/domodwyer/mailyak/v3"
)

// EmailOptions controls what the composed quote email contains.
type EmailOptions struct {
	From             string
	IncludeBreakdown bool
	Attachments      []EmailAttachment
}

// EmailAttachment is one file attached to the composed message.
type EmailAttachment struct {
	Filename string
	Data     []byte
}

// ComposeQuoteEmail builds the full MIME message for a quote email and
// returns its raw bytes. Costs in the body are the reconciled values: when
// an override exists the original estimate never appears. Transport is the
// caller's concern; this only composes.
func ComposeQuoteEmail(data QuoteExportData, opts EmailOptions) ([]byte, error) {
	if data.ClientEmail == "" {
		return nil, &ValidationError{Fields: map[string]string{
			"email": "Client email is required",
		}}
	}

	mail := mailyak.New("", nil)
	mail.To(data.ClientEmail)
	if opts.From != "" {
		mail.From(opts.From)
	}
	mail.Subject(fmt.Sprintf("Your renovation quote %s", data.ReferenceNumber))

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", data.ClientName)
	fmt.Fprintf(&b, "Please find your renovation quote below.\n\n")
	fmt.Fprintf(&b, "Areas: %s\n", strings.Join(data.AreaNames, ", "))
	fmt.Fprintf(&b, "Floor area: %.2f m2, wall area: %.2f m2\n\n", data.TotalFloorArea, data.TotalWallArea)

	if opts.IncludeBreakdown {
		for _, r := range data.Rows {
			fmt.Fprintf(&b, "  %d. %-30s %s\n", r.Index, r.Component, FormatMoney(r.Cost))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total: %s\n", FormatMoney(data.Total))
	if data.Confidence != "" {
		fmt.Fprintf(&b, "Confidence: %s\n", data.Confidence)
	}
	b.WriteString("\nRegards,\nThe Renovation Team\n")

	mail.Plain().Set(b.String())

	for _, att := range opts.Attachments {
		mail.Attach(att.Filename, bytes.NewReader(att.Data))
	}

	buf, err := mail.MimeBuf()
	if err != nil {
		return nil, fmt.Errorf("failed to build MIME message: %w", err)
	}
	return buf.Bytes(), nil
}
