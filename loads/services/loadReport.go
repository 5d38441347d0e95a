package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"time"

	"cargo-logbook-backend/db/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrNoLoadsToExport is reported when an export is requested while the
// current filters match nothing. It is checked before any rendering starts.
var ErrNoLoadsToExport = errors.New("não há cargas para exportar com os filtros atuais")

// LoadCardView is one load prepared for display: formatted date, status
// chip and a placeholder dash for every empty optional field. User text is
// escaped by html/template when the view hits a template.
type LoadCardView struct {
	ID         string
	LoadNumber string
	DateBR     string
	Carrier    string
	Route      string
	Volumes    string
	Orders     string
	Loader     string
	Notes      string
	Status     string
	ChipClass  string
	ChipLabel  string
}

type loadReportData struct {
	GeneratedAt string
	Rows        []LoadCardView
	AutoPrint   bool
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// NewLoadCardViews maps loads to display views in list order.
func NewLoadCardViews(loads []models.Load) []LoadCardView {
	views := make([]LoadCardView, 0, len(loads))
	for _, l := range loads {
		status := l.Status
		if status == "" {
			status = models.LoadStatusOK
		}
		chipClass, chipLabel := "chip--problema", "Problema"
		if status == models.LoadStatusOK {
			chipClass, chipLabel = "chip--ok", "OK"
		}
		views = append(views, LoadCardView{
			ID:         l.ID.String(),
			LoadNumber: l.LoadNumber,
			DateBR:     l.Date.FormatBR(),
			Carrier:    orDash(l.Carrier),
			Route:      orDash(l.Route),
			Volumes:    orDash(l.Volumes),
			Orders:     orDash(l.Orders),
			Loader:     orDash(l.Loader),
			Notes:      orDash(l.Notes),
			Status:     string(status),
			ChipClass:  chipClass,
			ChipLabel:  chipLabel,
		})
	}
	return views
}

const loadCardsTemplate = `{{if not .Rows}}<p class="empty-state">Nenhuma carga encontrada com os filtros atuais.</p>{{end}}{{range .Rows}}<article class="carga-card" data-id="{{.ID}}">
  <header class="carga-header">
    <div>
      <span class="carga-numero">Carga {{.LoadNumber}}</span>
      <span class="carga-data">{{.DateBR}}</span>
    </div>
    <span class="chip {{.ChipClass}}">{{.ChipLabel}}</span>
  </header>
  <div class="carga-body">
    <p><strong>Transportadora:</strong> {{.Carrier}}</p>
    <p><strong>Rota:</strong> {{.Route}}</p>
    <p><strong>Volumes:</strong> {{.Volumes}} &nbsp; &bull; &nbsp; <strong>Pedidos:</strong> {{.Orders}}</p>
    <p><strong>Carregador:</strong> {{.Loader}}</p>
    <p><strong>Obs:</strong> {{.Notes}}</p>
  </div>
  <footer class="carga-footer">
    <button class="btn-ghost btn-sm btn-edit" data-id="{{.ID}}">Editar</button>
    <button class="btn-danger-outline btn-sm btn-delete" data-id="{{.ID}}">Excluir</button>
  </footer>
</article>
{{end}}`

const loadReportTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Relatório de Cargas</title>
    <style>
      body {
        font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
        padding: 24px;
        color: #111827;
      }
      h1 { margin-bottom: 4px; }
      h2 { margin-top: 0; font-size: 14px; color: #6b7280; }
      table {
        width: 100%;
        border-collapse: collapse;
        margin-top: 16px;
        font-size: 12px;
      }
      th, td {
        border: 1px solid #e5e7eb;
        padding: 4px 6px;
        vertical-align: top;
      }
      th {
        background: #f3f4f6;
        text-align: left;
      }
    </style>
  </head>
  <body>
    <h1>Relatório de Cargas</h1>
    <h2>Gerado em {{.GeneratedAt}}</h2>
    <table>
      <thead>
        <tr>
          <th>Data</th>
          <th>Nº Carga</th>
          <th>Transportadora</th>
          <th>Rota</th>
          <th>Volumes</th>
          <th>Pedidos</th>
          <th>Carregador</th>
          <th>Situação</th>
          <th>Observações</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}<tr>
          <td>{{.DateBR}}</td>
          <td>{{.LoadNumber}}</td>
          <td>{{.Carrier}}</td>
          <td>{{.Route}}</td>
          <td>{{.Volumes}}</td>
          <td>{{.Orders}}</td>
          <td>{{.Loader}}</td>
          <td>{{.ChipLabel}}</td>
          <td>{{.Notes}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    {{if .AutoPrint}}<script>window.print();</script>{{end}}
  </body>
</html>
`

var (
	cardsTmpl  = template.Must(template.New("load-cards").Parse(loadCardsTemplate))
	reportTmpl = template.Must(template.New("load-report").Parse(loadReportTemplate))
)

// RenderLoadCards produces the list markup for the dashboard, one card per
// load in filtered order.
func RenderLoadCards(loads []models.Load) (string, error) {
	var buf bytes.Buffer
	err := cardsTmpl.Execute(&buf, loadReportData{Rows: NewLoadCardViews(loads)})
	if err != nil {
		return "", fmt.Errorf("failed to render load cards: %w", err)
	}
	return buf.String(), nil
}

// RenderLoadReport produces the standalone printable document. autoPrint
// adds the print trigger used when the report opens in a browser tab; the
// PDF path renders without it.
func RenderLoadReport(loads []models.Load, generatedAt time.Time, autoPrint bool) (string, error) {
	if len(loads) == 0 {
		return "", ErrNoLoadsToExport
	}

	data := loadReportData{
		GeneratedAt: generatedAt.Format("02/01/2006 15:04"),
		Rows:        NewLoadCardViews(loads),
		AutoPrint:   autoPrint,
	}

	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render load report: %w", err)
	}
	return buf.String(), nil
}

// GenerateLoadReportPDF renders the report HTML to an A4 PDF with a
// headless browser. Any failure here is the export-blocked case; the
// caller surfaces a message instead of crashing.
func GenerateLoadReportPDF(htmlContent string, w io.Writer) error {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(htmlContent))
	})

	server := &http.Server{Handler: mux}
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		return err
	}
	defer listener.Close()

	go server.Serve(listener)
	defer server.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	url := fmt.Sprintf("http://localhost:%d", port)

	var buf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // A4 width
				WithPaperHeight(11.69). // A4 height
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				WithLandscape(true).
				WithPreferCSSPageSize(false).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return err
	}

	_, err = w.Write(buf)
	return err
}
