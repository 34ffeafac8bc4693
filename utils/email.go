package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type NewOrderEmailData struct {
	OrderNumber string
	Restaurant  string
	ClientName  string
	ClientPhone string
	Type        string
	Total       string
	Comment     string
	Lines       []string
}

var newOrderTemplate = template.Must(template.New("new_order").Parse(`
<h2>Nouvelle commande {{.OrderNumber}}</h2>
<p><strong>{{.Restaurant}}</strong></p>
<p>Client : {{.ClientName}} — {{.ClientPhone}}<br>Type : {{.Type}}</p>
<ul>
{{range .Lines}}<li>{{.}}</li>
{{end}}</ul>
<p><strong>Total : {{.Total}}</strong></p>
{{if .Comment}}<p>Note : {{.Comment}}</p>{{end}}
`))

// SendNewOrderEmail notifies the owner of a new order. Runs async so the
// checkout response never waits on SMTP; failures are logged and dropped.
func SendNewOrderEmail(to string, data NewOrderEmailData) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		if host == "" || to == "" {
			return
		}

		var body bytes.Buffer
		if err := newOrderTemplate.Execute(&body, data); err != nil {
			log.Printf("Failed to render order email: %v", err)
			return
		}

		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Nouvelle commande "+data.OrderNumber)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Failed to send order email: %v", err)
		}
	}()
}
