package mailer

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Message struct {
	Subject string
	HTML    string
}

func render(name, subject string, data any) (Message, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return Message{}, err
	}
	return Message{Subject: subject, HTML: buf.String()}, nil
}

func OrderConfirmation(userName, orderID, itemsSummary string, total decimal.Decimal) (Message, error) {
	return render("order_confirmation.html", "Order Confirmed - "+orderID, map[string]any{
		"UserName": userName,
		"OrderID":  orderID,
		"Items":    itemsSummary,
		"Total":    total.StringFixed(2),
	})
}

func OrderDelivered(userName, orderID string) (Message, error) {
	return render("order_delivered.html", "Order Delivered - "+orderID, map[string]any{
		"UserName": userName,
		"OrderID":  orderID,
	})
}

func PasswordReset(userName, code string) (Message, error) {
	return render("password_reset.html", "Password Reset Code - Flavour Fleet", map[string]any{
		"UserName": userName,
		"Code":     code,
	})
}
