package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/monocheck/internal/config"
	"github.com/modu-ai/monocheck/internal/structure"
	"github.com/modu-ai/monocheck/pkg/models"
)

// Fixed report lines.
const (
	Banner         = "🔍 Validating monorepo structure..."
	SuccessLine    = "✅ Monorepo structure is correct!"
	ManifestHeader = "❌ Package.json issues:"

	itemIndent = "   "
)

// Renderer formats a structure.Report as plain or colored text.
type Renderer struct {
	dirsHeader   string
	hint         string
	failStyle    lipgloss.Style
	successStyle lipgloss.Style
	mutedStyle   lipgloss.Style
}

// CacheDirsHeader returns the header of the misplaced directory section.
func CacheDirsHeader(marker string) string {
	return fmt.Sprintf("❌ Rogue %s folders found:", marker)
}

// NewRenderer creates a Renderer whose cache directory header and cleanup
// hint name the marker in rules.
func NewRenderer(rules config.Rules, noColor bool) *Renderer {
	r := &Renderer{
		dirsHeader: CacheDirsHeader(rules.MarkerName),
		hint:       rules.RemediationHint(),
	}

	if noColor {
		r.failStyle = lipgloss.NewStyle()
		r.successStyle = lipgloss.NewStyle()
		r.mutedStyle = lipgloss.NewStyle()
		return r
	}

	r.failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC2626"))
	r.successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#059669"))
	r.mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	return r
}

// RenderBanner returns the line printed before the checks run.
func (r *Renderer) RenderBanner() string {
	return Banner + "\n"
}

// Render formats the findings of report. Each non-empty category gets a
// header and one indented line per violation. A clean report renders the
// success line.
func (r *Renderer) Render(report *structure.Report) string {
	var sb strings.Builder

	if len(report.CacheDirectories) > 0 {
		sb.WriteString(r.failStyle.Render(r.dirsHeader))
		sb.WriteString("\n")
		r.writeItems(&sb, report.CacheDirectories)
		sb.WriteString("\n")
		sb.WriteString(itemIndent)
		sb.WriteString(r.mutedStyle.Render("Run: " + r.hint))
		sb.WriteString("\n")
	}

	if len(report.ManifestIssues) > 0 {
		sb.WriteString(r.failStyle.Render(ManifestHeader))
		sb.WriteString("\n")
		r.writeItems(&sb, report.ManifestIssues)
	}

	if report.Clean() {
		sb.WriteString(r.successStyle.Render(SuccessLine))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (r *Renderer) writeItems(sb *strings.Builder, items []models.Violation) {
	for _, v := range items {
		sb.WriteString(itemIndent)
		sb.WriteString("- ")
		sb.WriteString(v.String())
		sb.WriteString("\n")
	}
}
