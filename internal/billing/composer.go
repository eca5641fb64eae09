package billing

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/adriagold/billnotice/internal/mail"
	"github.com/adriagold/billnotice/internal/model"
)

// NoticeSubject is the fixed subject line for billing notices.
const NoticeSubject = "ADRIA GOLD - Order summary and payment"

// currencyCode matches the unit convention of stored prices. Output format is
// fixed at design time; there is no localization or currency negotiation.
const currencyCode = "CZK"

// ComposerConfig holds the fixed values printed in every notice.
type ComposerConfig struct {
	SenderEmail       string
	BankAccountNumber string
	BankIBAN          string
}

// Composer renders billing summaries into recipient-addressed messages.
type Composer struct {
	cfg ComposerConfig
}

// NewComposer creates a new Composer.
func NewComposer(cfg ComposerConfig) *Composer {
	return &Composer{cfg: cfg}
}

type noticeLine struct {
	Name      string
	Quantity  int64
	UnitPrice string
	Total     string
}

type noticeData struct {
	Lines         []noticeLine
	GrandTotal    string
	AccountNumber string
	IBAN          string
}

var noticeTemplate = template.Must(template.New("notice").Parse(`<p>Hello,</p>
<p>here is the summary of your current order:</p>
<table style="width: 100%; border-collapse: collapse; margin-top: 15px; margin-bottom: 20px; border: 1px solid #ddd;">
    <thead>
        <tr style="background-color: #f2f2f2;">
            <th style="border: 1px solid #ddd; padding: 8px; text-align: left;">Product</th>
            <th style="border: 1px solid #ddd; padding: 8px; text-align: center;">Quantity</th>
            <th style="border: 1px solid #ddd; padding: 8px; text-align: right;">Unit price</th>
            <th style="border: 1px solid #ddd; padding: 8px; text-align: right;">Total</th>
        </tr>
    </thead>
    <tbody>
{{- range .Lines}}
        <tr>
            <td style="border: 1px solid #ddd; padding: 8px;">{{.Name}}</td>
            <td style="border: 1px solid #ddd; padding: 8px; text-align: center;">{{.Quantity}}x</td>
            <td style="border: 1px solid #ddd; padding: 8px; text-align: right;">{{.UnitPrice}}</td>
            <td style="border: 1px solid #ddd; padding: 8px; text-align: right;">{{.Total}}</td>
        </tr>
{{- end}}
    </tbody>
    <tfoot>
        <tr style="font-weight: bold; background-color: #e6e6e6;">
            <td colspan="3" style="border: 1px solid #ddd; padding: 8px; text-align: right;">Total due:</td>
            <td style="border: 1px solid #ddd; padding: 8px; text-align: right;">{{.GrandTotal}}</td>
        </tr>
    </tfoot>
</table>
<p>To pay, please send a bank transfer to account <strong>{{.AccountNumber}}</strong> (IBAN: {{.IBAN}}) for <strong>{{.GrandTotal}}</strong>.</p>
<p style="margin-top: 20px;">Thank you for your order!</p>
<p>Best regards,<br>ADRIA GOLD</p>
`))

// Compose renders the summary into a message addressed to the user.
func (c *Composer) Compose(summary Summary, user *model.User) (mail.Message, error) {
	data := noticeData{
		Lines:         make([]noticeLine, 0, len(summary.Lines)),
		GrandTotal:    formatAmount(summary.GrandTotal),
		AccountNumber: c.cfg.BankAccountNumber,
		IBAN:          c.cfg.BankIBAN,
	}

	for _, line := range summary.Lines {
		data.Lines = append(data.Lines, noticeLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: formatAmount(line.UnitPrice),
			Total:     formatAmount(line.Total),
		})
	}

	var buf bytes.Buffer
	if err := noticeTemplate.Execute(&buf, data); err != nil {
		return mail.Message{}, fmt.Errorf("failed to render notice: %w", err)
	}

	return mail.Message{
		To:      user.Email,
		From:    c.cfg.SenderEmail,
		Subject: NoticeSubject,
		HTML:    buf.String(),
	}, nil
}

func formatAmount(amount int64) string {
	return fmt.Sprintf("%d %s", amount, currencyCode)
}
