package mailer

import (
	"fmt"
	"log"
	"os"

	"Bracketpool/bracket"

	"github.com/matcornic/hermes/v2"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

func product() hermes.Hermes {
	link := os.Getenv("FRONTEND_URL")
	if link == "" {
		link = "http://localhost:3000"
	}
	return hermes.Hermes{
		Product: hermes.Product{
			Name: "Playoff Bracket Pool",
			Link: link,
		},
	}
}

// SendResetNotice emails a participant a readback of the picks that are
// about to be cleared. Best effort: when no SendGrid key is configured
// (local dev, tests) it logs and returns nil.
func SendResetNotice(name, email string, sections []bracket.SummarySection) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Printf("mailer: SENDGRID_API_KEY not set, skipping reset notice for %s", email)
		return nil
	}

	var rows [][]hermes.Entry
	for _, section := range sections {
		for _, entry := range section.Entries {
			rows = append(rows, []hermes.Entry{
				{Key: "Stage", Value: section.Title},
				{Key: "Pick", Value: entry.Label},
				{Key: "Selection", Value: entry.Value},
			})
		}
	}

	h := product()
	resetEmail := hermes.Email{
		Body: hermes.Body{
			Name: name,
			Intros: []string{
				"Your bracket picks have been reset.",
				"For your records, here is everything you had selected:",
			},
			Table: hermes.Table{
				Data: rows,
				Columns: hermes.Columns{
					CustomWidth: map[string]string{
						"Stage": "30%",
					},
				},
			},
			Outros: []string{
				"Register again to submit a fresh bracket.",
			},
		},
	}

	htmlBody, err := h.GenerateHTML(resetEmail)
	if err != nil {
		return err
	}
	textBody, err := h.GeneratePlainText(resetEmail)
	if err != nil {
		return err
	}

	fromAddress := os.Getenv("MAIL_FROM")
	if fromAddress == "" {
		fromAddress = "no-reply@bracketpool.app"
	}
	from := sgmail.NewEmail("Playoff Bracket Pool", fromAddress)
	to := sgmail.NewEmail(name, email)
	message := sgmail.NewSingleEmail(from, "Your bracket was reset", to, textBody, htmlBody)

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
