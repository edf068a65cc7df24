package gofpdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"

	"zuccess/go_backend/internal/domain/quotation"
	"zuccess/go_backend/internal/domain/quotation/pdf"
)

// Layout constants of the two-page quotation document, in millimeters.
const (
	margin      = 18.0
	headerBandH = 7.0
	logoW       = 70.0
	logoH       = 27.0
	logoY       = 12.0
	sigW        = 45.0
	sigH        = 45.0
	rowH        = 6.0
	lineH       = 5.0

	colNumW    = 10.0
	colQtyW    = 22.0
	colRateW   = 28.0
	colAmountW = 28.0
)

// Header band and table head color.
var brandR, brandG, brandB = 25, 55, 95

type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate renders the quotation into the fixed two-page A4 layout: cover
// page with the itemized table and summary, terms page with the commercial
// text. The function is pure over its inputs and safe for concurrent use;
// every call builds a fresh document.
func (g *Generator) Generate(q quotation.Quotation, meta pdf.Meta) ([]byte, error) {
	meta = meta.WithDefaults()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Quotation "+meta.QuoteNumber, true)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := doc.GetPageSize()
	contentW := pageW - 2*margin

	doc.SetFooterFunc(func() {
		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(0, 0, 0)
		doc.SetXY(margin, pageH-12)
		doc.CellFormat(contentW, 5, fmt.Sprintf("-- %d of 2 --", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	// Header band and logo box, top-right.
	doc.SetFillColor(brandR, brandG, brandB)
	doc.Rect(0, 0, pageW, headerBandH, "F")
	placeImage(doc, meta.Logo, "logo", pageW-margin-logoW, logoY, logoW, logoH)
	doc.SetTextColor(0, 0, 0)

	y := logoY + logoH + 10.0
	rightColX := pageW - margin - 58.0

	comp := meta.Company
	doc.SetFont("Helvetica", "B", 14)
	doc.Text(margin, y, tr(comp.Name))
	doc.SetFont("Helvetica", "B", 16)
	doc.Text(rightColX, y, "Quote")

	doc.SetFont("Helvetica", "", 10)
	doc.Text(margin, y+rowH, tr(comp.Address))
	doc.SetFont("Helvetica", "", 11)
	doc.Text(rightColX, y+rowH, tr("# "+meta.QuoteNumber))

	doc.SetFont("Helvetica", "", 10)
	doc.Text(margin, y+rowH*2, tr(comp.Country))
	doc.Text(rightColX, y+rowH*2, tr(comp.Phone))

	doc.SetFont("Helvetica", "B", 10)
	doc.Text(margin, y+rowH*3, "Bill To")
	doc.SetFont("Helvetica", "", 10)
	doc.Text(rightColX, y+rowH*3, tr(comp.Email))

	doc.Text(margin, y+rowH*4, tr(meta.BillTo))
	doc.Text(rightColX, y+rowH*4, tr(comp.Website))

	if comp.LicenseNumber != "" || comp.VATNumber != "" {
		doc.SetFont("Helvetica", "", 9)
		row := 5.0
		if comp.LicenseNumber != "" {
			doc.Text(rightColX, y+rowH*row, tr("License: "+comp.LicenseNumber))
			row++
		}
		if comp.VATNumber != "" {
			doc.Text(rightColX, y+rowH*row, tr("VAT: "+comp.VATNumber))
		}
		doc.SetFont("Helvetica", "", 10)
		y += rowH*7 + 6
	} else {
		y += rowH*5 + 6
	}

	doc.Text(margin, y, "Subject:")
	doc.Text(margin+16, y, tr(meta.Subject))
	y += 5
	doc.Text(margin, y, "Quote Date: "+meta.QuoteDate.Format("2 Jan 2006"))
	y += 12

	y = g.drawTable(doc, tr, q.Lines, meta.Currency, y, pageW, pageH)
	y += 8

	// Summary block, recomputed from the lines.
	subTotal, totalWithTax := summarize(q.Lines, quotation.TaxRate)
	amountX := margin + 48.0
	doc.SetFont("Helvetica", "", 10)
	doc.Text(margin, y, fmt.Sprintf("Sub Total (%s)", meta.Currency))
	doc.Text(amountX, y, formatNum(subTotal))
	y += 7
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(margin, y, fmt.Sprintf("Total with tax (%s)", meta.Currency))
	doc.SetFont("Helvetica", "", 11)
	doc.Text(amountX, y, formatNum(totalWithTax))
	y += 16

	doc.SetFont("Helvetica", "B", 10)
	doc.Text(margin, y, "Notes")
	doc.SetFont("Helvetica", "", 10)
	y += 6
	for _, ln := range doc.SplitText(tr(meta.Notes), contentW) {
		doc.Text(margin, y, ln)
		y += 5
	}
	y += 8

	if placeImage(doc, meta.Signature, "signature", margin, y, sigW, sigH) {
		y += sigH + 5
	} else {
		y += 2
	}
	doc.SetFont("Helvetica", "B", 10)
	doc.Text(margin, y, tr(meta.Signer.Name))
	doc.SetFont("Helvetica", "", 10)
	y += 5
	doc.Text(margin, y, tr(meta.Signer.Title))

	// Terms page.
	doc.AddPage()
	y = 22
	terms := meta.Terms
	y = g.bulletSection(doc, tr, "Payment Terms:", terms.Payment, y, 8, contentW)
	y += 4
	y = g.bulletSection(doc, tr, "Installation Duration (Per Apartment):", terms.Installation, y, 8, contentW)
	y += 4
	y = g.bulletSection(doc, tr, "Warranty & Support:", terms.Warranty, y, 8, contentW)
	y += 4
	y = g.bulletSection(doc, tr, "Validity of Quotation", []string{terms.Validity}, y, 6, contentW)
	y += 4
	g.bulletSection(doc, tr, "Exclusions:", []string{terms.Exclusions}, y, 6, contentW)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("quotation pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// drawTable renders the itemized grid and returns the y position below it.
func (g *Generator) drawTable(doc *gofpdf.Fpdf, tr func(string) string, lines []quotation.LineItem, currency string, y, pageW, pageH float64) float64 {
	contentW := pageW - 2*margin
	descW := contentW - colNumW - colQtyW - colRateW - colAmountW

	doc.SetXY(margin, y)
	doc.SetFillColor(brandR, brandG, brandB)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 10)
	doc.CellFormat(colNumW, 8, "#", "1", 0, "C", true, 0, "")
	doc.CellFormat(descW, 8, "Item & Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(colQtyW, 8, "Qty", "1", 0, "R", true, 0, "")
	doc.CellFormat(colRateW, 8, fmt.Sprintf("Rate (%s)", currency), "1", 0, "R", true, 0, "")
	doc.CellFormat(colAmountW, 8, fmt.Sprintf("Amount (%s)", currency), "1", 0, "R", true, 0, "")
	y += 8
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 10)

	for _, row := range displayRows(lines, quotation.TaxRate) {
		nameLines := doc.SplitText(tr(row.name), descW-3)
		rh := lineH * float64(len(nameLines))
		if rh < rowH {
			rh = rowH
		}
		if y+rh > pageH-20 {
			// Fixed layout: the cover page never spills into the terms page.
			break
		}
		x := margin
		doc.SetXY(x, y)
		doc.CellFormat(colNumW, rh, row.num, "1", 0, "C", false, 0, "")
		x += colNumW
		doc.Rect(x, y, descW, rh, "")
		for i, ln := range nameLines {
			doc.Text(x+1.5, y+4+float64(i)*lineH, ln)
		}
		x += descW
		doc.SetXY(x, y)
		doc.CellFormat(colQtyW, rh, row.qty, "1", 0, "R", false, 0, "")
		doc.CellFormat(colRateW, rh, row.rate, "1", 0, "R", false, 0, "")
		doc.CellFormat(colAmountW, rh, row.amount, "1", 0, "R", false, 0, "")
		y += rh
	}
	return y
}

// bulletSection renders one titled block of wrapped bullet items and
// returns the y position below it.
func (g *Generator) bulletSection(doc *gofpdf.Fpdf, tr func(string) string, title string, items []string, y, gap, contentW float64) float64 {
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(margin, y, title)
	doc.SetFont("Helvetica", "", 10)
	y += gap
	for _, item := range items {
		if item == "" {
			continue
		}
		for _, ln := range doc.SplitText(tr("• "+item), contentW-6) {
			doc.Text(margin+4, y, ln)
			y += 5
		}
		y += 2
	}
	return y
}

// placeImage registers raw image bytes and draws them at the given box.
// Missing or undecodable images are skipped without failing the render.
func placeImage(doc *gofpdf.Fpdf, raw []byte, name string, x, y, w, h float64) bool {
	if len(raw) == 0 {
		return false
	}
	_, kind, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return false
	}
	var imgType string
	switch kind {
	case "png":
		imgType = "PNG"
	case "jpeg":
		imgType = "JPG"
	default:
		return false
	}
	opts := gofpdf.ImageOptions{ImageType: imgType}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	if !doc.Ok() {
		doc.ClearError()
		return false
	}
	doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return true
}
