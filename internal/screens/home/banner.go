package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/learncode/internal/progress"
	"github.com/abhisek/learncode/internal/ui/components"
	"github.com/abhisek/learncode/internal/ui/theme"
)

const titleFull = ` _                                        _
| | ___  __ _ _ __ _ __   ___ ___   __| | ___
| |/ _ \/ _' | '__| '_ \ / __/ _ \ / _' |/ _ \
| |  __/ (_| | |  | | | | (_| (_) | (_| |  __/
|_|\___|\__,_|_|  |_| |_|\___\___/ \__,_|\___|`

const titleCompact = "</> l e a r n c o d e"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render(art))
}

// renderStats renders XP, streak, certificates, and overall completion in
// a double-bordered box.
func renderStats(sum progress.Summary, cw int) string {
	xp := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streak := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	certs := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	line := fmt.Sprintf("%s   %s   %s",
		xp.Render(fmt.Sprintf("⚡ %d XP", sum.TotalXP)),
		streak.Render(fmt.Sprintf("🔥 %d DAY STREAK", sum.Streak)),
		certs.Render(fmt.Sprintf("🏆 %d CERTIFICATES", sum.Certificates)),
	)
	label := fmt.Sprintf("%d/%d lessons", sum.Overall.Completed, sum.Overall.Total)
	bar := components.NewProgressBar(label, sum.Overall.Percentage, true, cw-4).View()

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line + "\n" + bar)
}
