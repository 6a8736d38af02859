package services

import (
	"fmt"
	"strings"
	"sync"

	"posadmin_server/lib"
	"posadmin_server/pos"
	"posadmin_server/structs"
	"posadmin_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient     *resend.Client
	emailClientOnce = sync.Once{}
)

// EmailService sends transactional mail through Resend. Receipts are a
// courtesy: every send is best-effort and callers never fail on mail errors.
type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.ResendAPIKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	emailClientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	if !es.cfg.Email.Enabled {
		es.logger.Debug("Email sending disabled, skipping", gecho.Field("subject", subject))
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.FromAddress,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendReceiptEmail mails a sale receipt to the customer. The receipt number
// is a human-friendly reference; the sale id stays internal.
func (es *EmailService) SendReceiptEmail(toEmail, customerName string, sale *tables.Sale, entries []pos.Entry) error {
	subject := fmt.Sprintf("Your receipt %s", lib.GenerateReceiptNumber())

	var rows strings.Builder
	for _, entry := range entries {
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>`,
			entry.Name, entry.Quantity, entry.UnitPrice.StringFixed(2), entry.Subtotal().StringFixed(2),
		))
	}

	body := fmt.Sprintf(`
		<h2>Thank you for your purchase, %s!</h2>
		<p>Sale date: %s</p>
		<table border="1" cellpadding="6" cellspacing="0">
			<tr><th>Product</th><th>Qty</th><th>Unit price</th><th>Subtotal</th></tr>
			%s
		</table>
		<p><strong>Total: %s</strong></p>
	`, customerName, sale.SaleDate.Format("2 January 2006 15:04"), rows.String(), sale.TotalAmount.StringFixed(2))

	return es.SendEmail([]string{toEmail}, subject, body)
}
