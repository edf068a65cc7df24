package pdf

import (
	"time"

	"zuccess/go_backend/internal/domain/quotation"
)

// Meta carries everything the renderer needs besides the priced lines.
// Logo and Signature are raw image bytes already loaded by the caller;
// either may be nil, in which case the corresponding box is skipped.
type Meta struct {
	QuoteNumber string
	BillTo      string
	Subject     string
	QuoteDate   time.Time
	Notes       string
	Currency    string
	Company     quotation.CompanyProfile
	Signer      quotation.Signer
	Terms       quotation.Terms
	Logo        []byte
	Signature   []byte
}

// WithDefaults fills empty fields so a bare Meta still renders a complete
// document.
func (m Meta) WithDefaults() Meta {
	if m.QuoteNumber == "" {
		m.QuoteNumber = "QT-000001"
	}
	if m.BillTo == "" {
		m.BillTo = "Client"
	}
	if m.Subject == "" {
		m.Subject = "Smart Home Quotation"
	}
	if m.QuoteDate.IsZero() {
		m.QuoteDate = time.Now()
	}
	if m.Notes == "" {
		m.Notes = "Looking forward for your business."
	}
	if m.Currency == "" {
		m.Currency = "SAR"
	}
	if m.Company == (quotation.CompanyProfile{}) {
		m.Company = quotation.DefaultCompany()
	}
	if m.Signer == (quotation.Signer{}) {
		m.Signer = quotation.DefaultSigner()
	}
	m.Terms = m.Terms.Merged()
	return m
}

// Filename is the suggested download name for a rendered quotation.
func Filename(quoteNumber string) string {
	if quoteNumber == "" {
		quoteNumber = "QT-000001"
	}
	return "Quotation-" + quoteNumber + ".pdf"
}

type Generator interface {
	Generate(q quotation.Quotation, meta Meta) ([]byte, error)
}
