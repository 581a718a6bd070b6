package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"localeaudit/internal/domain/entities"
	"localeaudit/pkg/strutil"
)

// Discord embed limits.
const (
	MaxFields      = 25
	MaxFieldName   = 256
	MaxFieldValue  = 1024
	MaxDescription = 4096
	MaxEmbedTotal  = 6000
)

// summaryReserve is kept free for the "N more file(s)" field.
const summaryReserve = 64

const (
	colorClean   = 0x57F287
	colorMissing = 0xED4245
	embedTitle   = "Missing translation values"
)

func formatLocales(locales []string) string {
	return "`" + strings.Join(locales, "`, `") + "`"
}

func buildDescription(report *entities.Report) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("**Locales searched:** %s\n", formatLocales(report.Locales)))
	b.WriteString(fmt.Sprintf("**Preview locale:** `%s`\n\n", report.PreviewLocale))
	if len(report.Rows) == 0 {
		b.WriteString("No missing values.")
	} else {
		b.WriteString(fmt.Sprintf("**%d** missing value(s)", len(report.Rows)))
	}
	return strutil.Ellipsis(b.String(), MaxDescription)
}

// fileKeys lists the keys missing a value in path, one per line.
func fileKeys(report *entities.Report, path string) string {
	var lines []string
	for _, r := range report.Rows {
		if r.FilePath == path {
			lines = append(lines, "`"+r.Key+"`")
		}
	}
	return strutil.Ellipsis(strings.Join(lines, "\n"), MaxFieldValue)
}

func fieldSize(f *discordgo.MessageEmbedField) int {
	return utf8.RuneCountInString(f.Name) + utf8.RuneCountInString(f.Value)
}

// BuildReportEmbed builds the summary posted to the report channel. Each file gets
// a field with its missing keys. Files past the field count or the total size
// limit are summed in a last field.
func BuildReportEmbed(report *entities.Report) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       embedTitle,
		Description: buildDescription(report),
		Color:       colorClean,
	}
	if len(report.Rows) == 0 {
		return embed
	}
	embed.Color = colorMissing

	counts := report.CountByFile()
	embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d file(s) affected", len(counts))}
	used := utf8.RuneCountInString(embed.Title) +
		utf8.RuneCountInString(embed.Description) +
		utf8.RuneCountInString(embed.Footer.Text)

	for i, fc := range counts {
		last := i == len(counts)-1
		if !last && len(embed.Fields) == MaxFields-1 {
			break
		}
		field := &discordgo.MessageEmbedField{
			Name:  strutil.Ellipsis(fmt.Sprintf("%s (%d)", fc.Path, fc.Count), MaxFieldName),
			Value: fileKeys(report, fc.Path),
		}
		reserve := summaryReserve
		if last {
			reserve = 0
		}
		if used+fieldSize(field)+reserve > MaxEmbedTotal {
			break
		}
		embed.Fields = append(embed.Fields, field)
		used += fieldSize(field)
	}

	if rest := counts[len(embed.Fields):]; len(rest) > 0 {
		missing := 0
		for _, fc := range rest {
			missing += fc.Count
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d more file(s)", len(rest)),
			Value: fmt.Sprintf("%d missing value(s)", missing),
		})
	}
	return embed
}
