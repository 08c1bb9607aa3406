// Package term renders the client surfaces in the terminal with lipgloss.
// It is one implementation of the ui.Port; the core never depends on it
// directly.
package term

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fridgechef/internal/core/render"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	pillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dffef7")).
			Background(lipgloss.Color("#134e4a")).
			Padding(0, 1)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8dd7c6"))

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	toggleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	usageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	skeletonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	cardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#35d9b3")).
			Padding(0, 1).
			Width(72)
)

// UI implements ui.Port on a terminal. Writes to out are whole-region
// replacements in sequence; in feeds confirmation prompts.
type UI struct {
	in  *bufio.Reader
	out io.Writer

	usage         string
	authenticated bool
}

// New creates a terminal UI reading confirmations from in and writing to out.
// When in is already buffered the same reader is reused, so the command loop
// and confirmation prompts can share stdin without stealing each other's
// input.
func New(in io.Reader, out io.Writer) *UI {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &UI{
		in:  br,
		out: out,
	}
}

// SetUsage replaces the usage line.
func (u *UI) SetUsage(line string) {
	u.usage = line
	u.printStatus()
}

// SetAuthButtons switches between the signed-in and signed-out affordances.
func (u *UI) SetAuthButtons(authenticated bool) {
	u.authenticated = authenticated
	u.printStatus()
}

func (u *UI) printStatus() {
	if u.authenticated {
		fmt.Fprintln(u.out, usageStyle.Render(u.usage)+hintStyle.Render("   [logout]"))
		return
	}
	fmt.Fprintln(u.out, hintStyle.Render("not signed in   [login] [signup]"))
}

// ReplaceCards redraws the whole card area.
func (u *UI) ReplaceCards(cards []*render.Card) {
	for _, c := range cards {
		fmt.Fprintln(u.out, cardBorder.Render(u.cardBody(c)))
	}
}

func (u *UI) cardBody(c *render.Card) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d. %s\n", c.Index+1, titleStyle.Render(c.Title))
	if c.Description != "" {
		b.WriteString(descStyle.Render(c.Description) + "\n")
	}

	if len(c.Ingredients) > 0 {
		pills := make([]string, 0, len(c.Ingredients))
		for _, ing := range c.Ingredients {
			pills = append(pills, pillStyle.Render(ing))
		}
		b.WriteString(strings.Join(pills, " ") + "\n")
	}

	b.WriteString(metaStyle.Render(c.TimeSummary()) + "\n")

	b.WriteString(toggleStyle.Render(fmt.Sprintf("[%s]", c.ToggleLabel())))
	if c.Expanded() {
		b.WriteByte('\n')
		if len(c.Steps) == 0 {
			b.WriteString(hintStyle.Render("(no steps provided)"))
		}
		for i, step := range c.Steps {
			b.WriteString(stepStyle.Render(fmt.Sprintf("  %d) %s", i+1, step)))
			if i < len(c.Steps)-1 {
				b.WriteByte('\n')
			}
		}
	}

	return b.String()
}

// ShowLoading draws placeholder skeleton cards.
func (u *UI) ShowLoading(count int) {
	for i := 0; i < count; i++ {
		fmt.Fprintln(u.out, cardBorder.Render(skeletonStyle.Render("· · · cooking · · ·")))
	}
}

// ShowEmpty draws the empty-state indicator.
func (u *UI) ShowEmpty() {
	fmt.Fprintln(u.out, hintStyle.Render("No recipes found. Try different ingredients."))
}

// ShowError replaces the card area with an error message.
func (u *UI) ShowError(message string) {
	fmt.Fprintln(u.out, errorStyle.Render(message))
}

// ShowValidation surfaces a local input error next to the prompt.
func (u *UI) ShowValidation(message string) {
	fmt.Fprintln(u.out, errorStyle.Render("! "+message))
}

// ConfirmUpsell asks a yes/no question and blocks for the answer.
func (u *UI) ConfirmUpsell(message string) bool {
	fmt.Fprintln(u.out, usageStyle.Render(message))
	fmt.Fprint(u.out, "Proceed to checkout? [y/N] ")

	line, err := u.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// Navigate hands the user off to an external URL. A terminal cannot redirect,
// so the link is printed for the user to follow.
func (u *UI) Navigate(url string) {
	fmt.Fprintln(u.out, usageStyle.Render("Continue in your browser: ")+url)
}
