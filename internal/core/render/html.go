package render

import (
	"fmt"
	"strings"
)

// escaper covers the minimum escape set for untrusted text inserted into
// markup. A recipe title or description is attacker-controlled input; failing
// to escape it is an injection defect, not a cosmetic one.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeText escapes the characters & < > " ' for safe insertion into markup.
func EscapeText(s string) string {
	return escaper.Replace(s)
}

// HTML renders one card as an HTML article. All server-supplied text passes
// through EscapeText.
func (c *Card) HTML() string {
	var b strings.Builder

	b.WriteString(`<article class="recipe-card">` + "\n")
	fmt.Fprintf(&b, `  <img class="recipe-img" src="%s" alt="%s" loading="lazy" />`+"\n",
		EscapeText(c.Image), EscapeText(c.Title))
	fmt.Fprintf(&b, `  <div class="title">%s</div>`+"\n", EscapeText(c.Title))
	fmt.Fprintf(&b, `  <div class="desc">%s</div>`+"\n", EscapeText(c.Description))

	b.WriteString(`  <div class="ingredients">` + "\n")
	for _, ing := range c.Ingredients {
		fmt.Fprintf(&b, `    <span class="pill">%s</span>`+"\n", EscapeText(ing))
	}
	b.WriteString(`  </div>` + "\n")

	fmt.Fprintf(&b, `  <div class="uses"><strong>Prep:</strong> %s min &bull; <strong>Cook:</strong> %s min</div>`+"\n",
		EscapeText(c.PrepLabel), EscapeText(c.CookLabel))

	state := "closed"
	if c.expanded {
		state = "open"
	}
	fmt.Fprintf(&b, `  <div class="card-details %s">`+"\n", state)
	b.WriteString(`    <ol>` + "\n")
	for _, step := range c.Steps {
		fmt.Fprintf(&b, `      <li>%s</li>`+"\n", EscapeText(step))
	}
	b.WriteString(`    </ol>` + "\n")
	b.WriteString(`  </div>` + "\n")
	b.WriteString(`</article>`)

	return b.String()
}

// Document wraps rendered cards into a standalone HTML page for export.
func Document(cards []*Card) string {
	var b strings.Builder

	b.WriteString(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>fridgechef recipes</title>
<style>
body{font-family:ui-sans-serif,system-ui;margin:24px;background:#0c2924;color:#e9fffa}
.recipe-card{border:1px solid rgba(180,255,237,0.18);border-radius:16px;padding:16px;margin-bottom:16px;background:rgba(20,50,45,0.30)}
.recipe-img{max-width:240px;border-radius:12px}
.title{font-size:18px;font-weight:700;margin-top:8px}
.desc{color:#b6e6d9;margin:4px 0 10px 0}
.pill{display:inline-block;padding:4px 10px;margin:0 6px 6px 0;border-radius:999px;background:rgba(53,217,179,0.18);border:1px solid rgba(53,217,179,0.35)}
.uses{margin:8px 0;color:#8dd7c6}
.card-details.closed{display:none}
</style>
</head>
<body>
`)

	if len(cards) == 0 {
		b.WriteString(`<div class="no-results">No recipes found. Try different ingredients.</div>` + "\n")
	}
	for _, c := range cards {
		b.WriteString(c.HTML())
		b.WriteByte('\n')
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
