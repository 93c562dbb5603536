// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/amanat-silver/storefront-backend/internal/config"
	"github.com/amanat-silver/storefront-backend/internal/domain/cart"
	"github.com/amanat-silver/storefront-backend/internal/domain/checkout"
)

// Service renders cart quotes as PDF. Pieces are crafted to order, so the
// quote carries indicative pricing only.
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateCartQuote renders the current cart as a downloadable quote
func (s *Service) GenerateCartQuote(items []cart.LineItem) (*bytes.Buffer, error) {
	summary := checkout.Summarize(items)

	lines := make([]quoteLine, len(items))
	for i, item := range items {
		lines[i] = quoteLine{
			Name:     item.Product.Name,
			Quantity: item.Quantity,
			Price:    formatINR(item.Product.Price),
			Total:    formatINR(item.Product.Price * int64(item.Quantity)),
		}
	}

	data := quoteData{
		BrandName: "Amanat Silver",
		Date:      time.Now().Format("January 2, 2006"),
		Lines:     lines,
		Units:     summary.Units,
		Subtotal:  formatINR(summary.Subtotal),
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data quoteData) (string, error) {
	tmpl := template.Must(template.New("quote").Parse(quoteTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func formatINR(paise int64) string {
	return fmt.Sprintf("₹%.2f", float64(paise)/100)
}

type quoteLine struct {
	Name     string
	Quantity int
	Price    string
	Total    string
}

type quoteData struct {
	BrandName string
	Date      string
	Lines     []quoteLine
	Units     int
	Subtotal  string
}

// Quote HTML template
const quoteTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.BrandName}} Quote</title>
    <style>
        body {
            font-family: Georgia, serif;
            margin: 0;
            padding: 30px;
            color: #44403c;
        }
        .header {
            border-bottom: 2px solid #e7e5e4;
            padding-bottom: 20px;
            margin-bottom: 30px;
        }
        .brand {
            font-size: 26px;
            letter-spacing: 2px;
        }
        .date {
            color: #78716c;
            margin-top: 6px;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border-bottom: 1px solid #e7e5e4;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            font-weight: normal;
            color: #78716c;
            text-transform: uppercase;
            font-size: 11px;
            letter-spacing: 1px;
        }
        .qty-col, .price-col, .total-col {
            text-align: right;
            width: 100px;
        }
        .totals {
            text-align: right;
            font-size: 16px;
        }
        .note {
            margin-top: 40px;
            color: #78716c;
            font-size: 12px;
            font-style: italic;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="brand">{{.BrandName}}</div>
        <div class="date">Quote prepared {{.Date}}</div>
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Piece</th>
                <th class="qty-col">Qty</th>
                <th class="price-col">Price</th>
                <th class="total-col">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Lines}}
            <tr>
                <td>{{.Name}}</td>
                <td class="qty-col">{{.Quantity}}</td>
                <td class="price-col">{{.Price}}</td>
                <td class="total-col">{{.Total}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        {{.Units}} units &middot; indicative subtotal {{.Subtotal}}
    </div>

    <div class="note">
        Each piece is handcrafted to order. Final pricing, customization and
        completion time are confirmed personally after your order request.
    </div>
</body>
</html>
`
