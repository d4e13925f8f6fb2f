package http

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"

	"github.com/kazqvaizer/kalinsky-maker/internal/domain"
)

const dashboardCSS = `body{font-family:system-ui,sans-serif;margin:2rem;color:#222}
table{border-collapse:collapse;width:100%;margin-bottom:2rem}
th,td{text-align:left;padding:.35rem .6rem;border-bottom:1px solid #ddd;font-size:.9rem}
.status{font-weight:600}.status-done{color:#1a7f37}.status-failed{color:#cf222e}.status-processing{color:#9a6700}
.tag{display:inline-block;padding:0 .4rem;border-radius:.6rem;color:#fff;font-size:.75rem;margin-right:.2rem}
.muted{color:#888}`

// Reloads the page once any processing assembly reaches a terminal state.
const dashboardJS = `document.querySelectorAll("tr[data-processing]").forEach(function(row){
var es=new EventSource("/api/v1/assemblies/"+row.dataset.id+"/events");
es.addEventListener("status",function(e){var a=JSON.parse(e.data);if(a.status!=="processing"){es.close();location.reload();}});
});`

// Dashboard lists assemblies newest first, followed by the catalog.
func Dashboard(assemblies []*domain.Assembly, sources []domain.Source) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Kalinsky</title><style>`)
		b.WriteString(dashboardCSS)
		b.WriteString(`</style></head><body><h1>Assemblies</h1>`)

		if len(assemblies) == 0 {
			b.WriteString(`<p class="muted">No assemblies yet.</p>`)
		} else {
			b.WriteString(`<table><thead><tr><th>ID</th><th>Name</th><th>Status</th><th>Mode</th><th>Clips</th><th>Duration</th><th>Created</th><th>Note</th><th></th></tr></thead><tbody>`)
			for _, a := range assemblies {
				writeAssemblyRow(&b, a)
			}
			b.WriteString(`</tbody></table>`)
		}

		b.WriteString(`<h2>Sources</h2>`)
		if len(sources) == 0 {
			b.WriteString(`<p class="muted">Catalog is empty. POST /api/v1/sources/reindex to index the sources directory.</p>`)
		} else {
			b.WriteString(`<table><thead><tr><th>#</th><th>File</th><th>Duration</th><th>Resolution</th><th>Codec</th><th>Size</th><th>Tags</th></tr></thead><tbody>`)
			for _, s := range sources {
				writeSourceRow(&b, s)
			}
			b.WriteString(`</tbody></table>`)
		}

		b.WriteString(`<script>`)
		b.WriteString(dashboardJS)
		b.WriteString(`</script></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeAssemblyRow(b *strings.Builder, a *domain.Assembly) {
	id := templ.EscapeString(a.ID)
	if a.Status == domain.AssemblyStatusProcessing {
		fmt.Fprintf(b, `<tr data-processing data-id="%s">`, id)
	} else {
		b.WriteString(`<tr>`)
	}

	mode := "final"
	if a.Preview {
		mode = "preview"
	}
	duration := `<span class="muted">-</span>`
	if a.Duration != nil {
		duration = domain.FormatDuration(*a.Duration)
	}
	status := templ.EscapeString(string(a.Status))
	if a.Error != "" {
		status = fmt.Sprintf(`<span title="%s">%s</span>`, templ.EscapeString(a.Error), status)
	}

	fmt.Fprintf(b, `<td>%s</td><td>%s</td><td class="status status-%s">%s</td><td>%s</td><td>%d</td><td>%s</td><td title="%s">%s</td><td>%s</td>`,
		id,
		templ.EscapeString(a.Name),
		templ.EscapeString(string(a.Status)), status,
		mode,
		len(a.Clips),
		duration,
		a.Created.Format("2006-01-02 15:04:05 MST"), humanize.Time(a.Created),
		templ.EscapeString(a.Note),
	)
	if a.OutputURL != "" {
		fmt.Fprintf(b, `<td><a href="%s">play</a> <a href="/api/v1/assemblies/%s/download">download</a></td>`,
			templ.EscapeString(a.OutputURL), id)
	} else {
		b.WriteString(`<td></td>`)
	}
	b.WriteString(`</tr>`)
}

func writeSourceRow(b *strings.Builder, s domain.Source) {
	fmt.Fprintf(b, `<tr><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>`,
		s.Index,
		templ.EscapeString(s.Filename),
		domain.FormatDuration(s.Duration),
		templ.EscapeString(s.Resolution),
		templ.EscapeString(s.Codec),
		humanize.Bytes(uint64(s.FileSize)),
	)
	for _, t := range s.Tags {
		fmt.Fprintf(b, `<span class="tag" style="background:%s">%s</span>`,
			templ.EscapeString(t.Color), templ.EscapeString(t.Name))
	}
	b.WriteString(`</td></tr>`)
}
