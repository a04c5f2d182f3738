package report

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kisanseva/kisanseva/internal/domain/models"
)

// reportTemplate mirrors the document layout farmers already share: a detail
// table followed by the expense table with embedded bill images.
const reportTemplate = `<html>
  <body>
    <h2 style="color:#2e7d32;">{{.Title}}</h2>
    <table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;">
      {{- range .Fields}}
      <tr><td><b>{{.Label}}</b></td><td>{{.Value}}</td></tr>
      {{- end}}
    </table>
    <h3 style="color:#388e3c;">Expenses &amp; Bills</h3>
    <table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;">
      <tr><th>#</th><th>Amount</th><th>Bill</th></tr>
      {{- if .Expenses}}
      {{- range .Expenses}}
      <tr><td>{{.Number}}</td><td>{{.Amount}}</td><td>{{if eq .Bill "N/A"}}N/A{{else}}<img src="{{.Bill}}" width="80" />{{end}}</td></tr>
      {{- end}}
      {{- else}}
      <tr><td colspan="3">No Expenses</td></tr>
      {{- end}}
    </table>
    <p><b>Total Expenses:</b> {{.TotalExpenses}}</p>
    <p><b>{{.ProfitLabel}}:</b> {{.Profit}}</p>
  </body>
</html>
`

// HTMLRenderer writes reports as standalone HTML documents, the shape the
// external print/share collaborator consumes.
type HTMLRenderer struct {
	outDir string
	tmpl   *template.Template
	now    func() time.Time
}

// NewHTMLRenderer builds a renderer writing into outDir, or the system temp
// directory when outDir is empty.
func NewHTMLRenderer(outDir string) *HTMLRenderer {
	if outDir == "" {
		outDir = os.TempDir()
	}
	return &HTMLRenderer{
		outDir: outDir,
		tmpl:   template.Must(template.New("crop_report").Parse(reportTemplate)),
		now:    time.Now,
	}
}

// Render writes the report document and returns its path. The document is
// rendered fully in memory first so a failed render never leaves a partial
// file behind.
func (r *HTMLRenderer) Render(ctx context.Context, report models.CropReport) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, report); err != nil {
		return "", fmt.Errorf("execute report template: %w", err)
	}

	name := fmt.Sprintf("crop-report-%s-%d.html", sanitizeName(report.CropName), r.now().UnixNano())
	path := filepath.Join(r.outDir, name)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}
	return path, nil
}

func sanitizeName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, name)
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		return "crop"
	}
	return cleaned
}
