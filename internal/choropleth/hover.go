package choropleth

import "strings"

// Extra is one additional "Label: text" hover line.
type Extra struct {
	Label string
	Text  string
}

// Hover formats hover text: a bold title, a headline and optional extra
// lines, closed with <extra></extra> to hide the trace name.
func Hover(title, headline string, extras ...Extra) string {
	var b strings.Builder
	b.WriteString("<b>")
	b.WriteString(title)
	b.WriteString("</b><br>")
	b.WriteString(headline)
	for _, e := range extras {
		b.WriteString("<br>")
		b.WriteString(e.Label)
		b.WriteString(": ")
		b.WriteString(e.Text)
	}
	b.WriteString("<extra></extra>")
	return b.String()
}
