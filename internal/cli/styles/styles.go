package styles

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/gobees/gobees/internal/config/colors"
	"github.com/gobees/gobees/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Location:", "Notes:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Hives", "Records"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

// TimeLayout formats timestamps in cards
const TimeLayout = "2006-01-02 15:04"

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.InfoFg)).
		Background(lipgloss.Color(scheme.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.ErrorFg)).
		Background(lipgloss.Color(scheme.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.WarningFg)).
		Background(lipgloss.Color(scheme.WarningBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderField renders "Label: value"
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderApiaryCard renders an apiary and, when given, its hives
func RenderApiaryCard(apiary models.Apiary, hives []models.Hive) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(apiary.Name))
	b.WriteString(" " + SubtitleStyle.Render(fmt.Sprintf("#%d", apiary.ID)))
	b.WriteString("\n\n")

	if apiary.HasLocation() {
		b.WriteString(RenderField("Location", fmt.Sprintf("%.5f, %.5f", *apiary.LocationLat, *apiary.LocationLong)) + "\n")
	}
	if apiary.Notes != "" {
		b.WriteString(RenderField("Notes", apiary.Notes) + "\n")
	}
	b.WriteString(RenderField("Revised", formatTime(apiary.LastRevision)))

	if hives != nil {
		b.WriteString("\n" + SectionStyle.Render(fmt.Sprintf("Hives (%d)", len(hives))) + "\n")
		for _, h := range hives {
			b.WriteString(fmt.Sprintf("  • [%d] %s\n", h.ID, h.Name))
		}
	}

	return RenderCard(strings.TrimRight(b.String(), "\n"))
}

// RenderHiveCard renders a hive and the per-day summary of its recordings
func RenderHiveCard(hive models.Hive) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(hive.Name))
	b.WriteString(" " + SubtitleStyle.Render(fmt.Sprintf("#%d in apiary #%d", hive.ID, hive.ApiaryID)))
	b.WriteString("\n\n")

	if hive.Notes != "" {
		b.WriteString(RenderField("Notes", hive.Notes) + "\n")
	}
	b.WriteString(RenderField("Revised", formatTime(hive.LastRevision)))

	if len(hive.Recordings) > 0 {
		b.WriteString("\n" + SectionStyle.Render("Recordings") + "\n")
		for _, r := range hive.Recordings {
			s := r.Stats()
			b.WriteString(fmt.Sprintf("  • %s  %d records, max %d bees\n",
				r.Start.Format("2006-01-02"), s.Count, s.MaxBees))
		}
	}

	return RenderCard(strings.TrimRight(b.String(), "\n"))
}

// RenderRecordingCard renders the statistics of a recording
func RenderRecordingCard(rec models.Recording) string {
	s := rec.Stats()

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Hive #%d", rec.HiveID)))
	b.WriteString(" " + SubtitleStyle.Render(fmt.Sprintf("%s to %s",
		rec.Start.Format("2006-01-02"), rec.End.Format("2006-01-02"))))
	b.WriteString("\n\n")

	b.WriteString(RenderField("Records", fmt.Sprintf("%d", s.Count)) + "\n")
	b.WriteString(RenderField("Max bees", fmt.Sprintf("%d", s.MaxBees)) + "\n")
	b.WriteString(RenderField("Mean bees", fmt.Sprintf("%.1f", s.MeanBees)) + "\n")
	if s.MinTemp != nil {
		b.WriteString(RenderField("Hive temp", fmt.Sprintf("%.1f to %.1f °C", *s.MinTemp, *s.MaxTemp)) + "\n")
	}
	if s.MeanMeteoTmp != nil {
		b.WriteString(RenderField("Outside temp", fmt.Sprintf("%.1f °C mean over %d readings", *s.MeanMeteoTmp, len(rec.Meteo))) + "\n")
	}

	return RenderCard(strings.TrimRight(b.String(), "\n"))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format(TimeLayout)
}
