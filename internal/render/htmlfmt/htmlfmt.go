// Package htmlfmt paints render sections and cards as HTML fragments for
// the browser item database. It is a pure formatter: what to show is
// decided by the render package, this package only adds markup.
package htmlfmt

import (
	"fmt"
	"html"
	"strings"

	"github.com/arcdex/arcdex/internal/render"
)

// Card formats one summary card as a grid tile.
func Card(c render.Card) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<div class="item-card" data-item-id="%s">`, html.EscapeString(c.ID))
	fmt.Fprintf(&b, `<h3 class="item-card-title">%s</h3>`, html.EscapeString(c.Name))
	fmt.Fprintf(&b, `<span class="badge">%s</span>`, html.EscapeString(c.Badge))
	fmt.Fprintf(&b, `<div class="item-category">%s</div>`, html.EscapeString(c.Category))
	fmt.Fprintf(&b, `<p class="item-description">%s</p>`, html.EscapeString(c.Description))
	fmt.Fprintf(&b, `<div class="item-price">%s</div>`, html.EscapeString(c.Headline))
	b.WriteString(`</div>`)

	return b.String()
}

// Detail formats a detail rendering as a sequence of sections.
func Detail(sections []render.Section) string {
	var b strings.Builder
	for _, s := range sections {
		writeSection(&b, s)
	}
	return b.String()
}

func writeSection(b *strings.Builder, s render.Section) {
	b.WriteString(`<div class="detail-section">`)

	if s.Title != "" {
		fmt.Fprintf(b, `<h3>%s</h3>`, html.EscapeString(s.Title))
	}
	if s.Note != "" {
		fmt.Fprintf(b, `<p class="detail-note">%s</p>`, html.EscapeString(s.Note))
	}

	if len(s.Fields) > 0 {
		b.WriteString(`<div class="detail-grid">`)
		for _, f := range s.Fields {
			b.WriteString(`<div class="detail-item">`)
			fmt.Fprintf(b, `<div class="detail-item-label">%s</div>`, html.EscapeString(f.Label))
			fmt.Fprintf(b, `<div class="detail-item-value">%s</div>`, html.EscapeString(f.Value))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}

	if len(s.List) > 0 {
		b.WriteString(`<ul class="detail-list">`)
		for _, e := range s.List {
			b.WriteString(`<li>`)
			fmt.Fprintf(b, `<span class="entry-name">%s</span>`, html.EscapeString(e.Name))
			if e.Detail != "" {
				fmt.Fprintf(b, `<span class="entry-detail">%s</span>`, html.EscapeString(e.Detail))
			}
			if e.Value != "" {
				fmt.Fprintf(b, `<span class="entry-value">%s</span>`, html.EscapeString(e.Value))
			}
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
	}

	b.WriteString(`</div>`)
}
