package ui

import (
	"slices"
	"strings"

	"github.com/atomicstack/linux-ref-guide/internal/logging"
	"github.com/atomicstack/linux-ref-guide/internal/logging/events"
	"github.com/charmbracelet/glamour"
)

// Markdown styles accepted by the content renderer.
const (
	StyleAuto       = "auto"
	StyleASCII      = "ascii"
	StyleDark       = "dark"
	StyleDracula    = "dracula"
	StyleLight      = "light"
	StyleNoTTY      = "notty"
	StylePink       = "pink"
	StyleTokyoNight = "tokyo-night"
)

const minWrapWidth = 20

var styleNames = []string{StyleAuto, StyleASCII, StyleDark, StyleDracula, StyleLight, StyleNoTTY, StylePink, StyleTokyoNight}

// StyleNames lists the accepted markdown styles.
func StyleNames() []string {
	return slices.Clone(styleNames)
}

// ValidStyle reports whether name is an accepted markdown style.
func ValidStyle(name string) bool {
	return slices.Contains(styleNames, name)
}

func (m *Model) wrapWidth() int {
	width := m.contentWidth() - 4
	if m.wrap > 0 && m.wrap < width {
		width = m.wrap
	}
	return max(width, minWrapWidth)
}

func (m *Model) renderer() *glamour.TermRenderer {
	width := m.wrapWidth()
	if m.md != nil && m.mdWidth == width {
		return m.md
	}
	styleOpt := glamour.WithStandardStyle(m.style)
	if m.style == StyleAuto {
		styleOpt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		m.noteRenderError(err)
		return nil
	}
	m.md = r
	m.mdWidth = width
	return r
}

// renderMarkdown renders text for the content pane. Rendering problems fall
// back to the raw text so content is never lost.
func (m *Model) renderMarkdown(text string) string {
	r := m.renderer()
	if r == nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		m.noteRenderError(err)
		return text
	}
	return strings.TrimRight(out, "\n")
}

func (m *Model) noteRenderError(err error) {
	m.renderErrs++
	events.UI.RenderError(err)
	logging.Error(err)
}
