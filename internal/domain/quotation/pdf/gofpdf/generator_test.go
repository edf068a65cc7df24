package gofpdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zuccess/go_backend/internal/domain/quotation"
	"zuccess/go_backend/internal/domain/quotation/pdf"
)

func sampleQuotation(t *testing.T) quotation.Quotation {
	t.Helper()
	return quotation.ComputeCatalog([]quotation.CatalogSelection{
		{Item: quotation.StockItem{ID: 1, Name: "Smart Switch Single", UnitPrice: 190, QuantityInStock: 100}, RequestedQty: 2},
		{Item: quotation.StockItem{ID: 2, Name: "10\" Wall Mount Display", UnitPrice: 320, QuantityInStock: 25}, RequestedQty: 1},
	}, quotation.Options{IncludeInstallation: true})
}

func smallPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestGenerateTwoPageDocument(t *testing.T) {
	out, err := New().Generate(sampleQuotation(t), pdf.Meta{
		QuoteNumber: "QT-000166",
		BillTo:      "MKN",
		Subject:     "Smart Home Quotation for 3 Bedroom Apartment",
		QuoteDate:   time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Contains(t, string(out), "/Count 2")
}

func TestGenerateEmptyQuotation(t *testing.T) {
	out, err := New().Generate(quotation.Quotation{}, pdf.Meta{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateWithImages(t *testing.T) {
	out, err := New().Generate(sampleQuotation(t), pdf.Meta{
		Logo:      smallPNG(t),
		Signature: smallPNG(t),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateSkipsUndecodableImages(t *testing.T) {
	out, err := New().Generate(sampleQuotation(t), pdf.Meta{
		Logo:      []byte("definitely not an image"),
		Signature: []byte{0x00, 0x01, 0x02},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateLongNamesWrapWithoutError(t *testing.T) {
	q := quotation.ComputeServices([]quotation.ServiceEntry{
		{Name: "Custom AI service", Description: strings.Repeat("integration of the whole apartment ", 4), UnitPrice: 45, Qty: 8},
	}, quotation.Options{})
	out, err := New().Generate(q, pdf.Meta{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateConcurrentCallsAreIndependent(t *testing.T) {
	gen := New()
	q := sampleQuotation(t)
	var wg sync.WaitGroup
	errs := make([]error, 8)
	outs := make([][]byte, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outs[i], errs[i] = gen.Generate(q, pdf.Meta{QuoteNumber: "QT-000001"})
		}(i)
	}
	wg.Wait()
	for i := range errs {
		require.NoError(t, errs[i])
		assert.True(t, bytes.HasPrefix(outs[i], []byte("%PDF")))
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Quotation-QT-000166.pdf", pdf.Filename("QT-000166"))
	assert.Equal(t, "Quotation-QT-000001.pdf", pdf.Filename(""))
}
