package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/heartstage/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗███████╗ █████╗ ██████╗ ████████╗███████╗████████╗ █████╗  ██████╗ ███████╗
 ██║  ██║██╔════╝██╔══██╗██╔══██╗╚══██╔══╝██╔════╝╚══██╔══╝██╔══██╗██╔════╝ ██╔════╝
 ███████║█████╗  ███████║██████╔╝   ██║   ███████╗   ██║   ███████║██║  ███╗█████╗
 ██╔══██║██╔══╝  ██╔══██║██╔══██╗   ██║   ╚════██║   ██║   ██╔══██║██║   ██║██╔══╝
 ██║  ██║███████╗██║  ██║██║  ██║   ██║   ███████║   ██║   ██║  ██║╚██████╔╝███████╗
 ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ╚══════╝`

const bannerCompact = "H E A R T S T A G E"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 86

// RenderBanner returns the HEARTSTAGE banner styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
