// Package templates renders guest e-mails.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer renders the HTML and plain text bodies of an e-mail.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

// Render executes <name>.html and <name>.txt with data.
func (r *Renderer) Render(name string, data interface{}) (string, string, error) {
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render HTML template %s: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return "", "", fmt.Errorf("failed to render text template %s: %w", name, err)
	}
	return html.String(), text.String(), nil
}

// BookingConfirmationData feeds booking_confirmation.
type BookingConfirmationData struct {
	GuestName    string
	PropertyName string
	CheckIn      string
	CheckOut     string
	Nights       int
	TotalAmount  string
}

// PaymentReceiptData feeds payment_receipt.
type PaymentReceiptData struct {
	GuestName    string
	PropertyName string
	CheckIn      string
	CheckOut     string
	TotalPaid    string
	PaymentCount int
}
