package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const logoRaw = `
███████╗██████╗ ███╗   ███╗
██╔════╝██╔══██╗████╗ ████║
███████╗██║  ██║██╔████╔██║
╚════██║██║  ██║██║╚██╔╝██║
███████║██████╔╝██║ ╚═╝ ██║
╚══════╝╚═════╝ ╚═╝     ╚═╝
`

var (
	gradientStart = "#ff9800" // signal orange
	gradientEnd   = "#e91e63" // raspberry
)

// renderLogo blends the gradient horizontally across the banner, one
// styled rune at a time.
func renderLogo() string {
	start, _ := colorful.Hex(gradientStart)
	end, _ := colorful.Hex(gradientEnd)

	lines := strings.Split(strings.Trim(logoRaw, "\n"), "\n")
	width := 0
	for _, line := range lines {
		if w := len([]rune(line)); w > width {
			width = w
		}
	}
	if width == 0 {
		return ""
	}

	var b strings.Builder
	for _, line := range lines {
		for i, r := range []rune(line) {
			if r == ' ' {
				b.WriteRune(r)
				continue
			}
			blend := start.BlendLuv(end, float64(i)/float64(width))
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(blend.Hex())).Render(string(r)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

var logo = renderLogo()
