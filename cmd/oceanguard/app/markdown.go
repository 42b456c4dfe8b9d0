package app

import (
	"strings"
)

const helpText = `# OceanGuard

Record what you do for the ocean and share it with friends.

## Earning EcoCoins

- **Log Trash Collected**: 5 EcoCoins per kg
- **Add Calcium Bicarbonate**: 10 EcoCoins per kg
- Every kg of trash offsets an estimated 2 kg of CO2

## Friends and feed

- **Add a Friend** offers the example beach-goers from your config
- **View Your Friends** always shows where they are right now
- **Post an Update** adds to your community feed, oldest first

## Keys

- ` + "`↑/↓`" + ` or ` + "`j/k`" + ` move, ` + "`enter`" + ` selects, ` + "`1-9`" + ` jumps straight to an action
- ` + "`esc`" + ` cancels a prompt without changing anything
- ` + "`q`" + ` exits, ` + "`ctrl+c`" + ` quits from anywhere
`

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
	">", `\>`,
	"~", `\~`,
	"|", `\|`,
)

// toMarkdown turns a notice body into markdown: a "=== Title ===" first
// line becomes a heading and each following line a list item. User text is
// escaped so posts render literally.
func toMarkdown(body string) string {
	lines := strings.Split(body, "\n")
	var sb strings.Builder

	if title, ok := bannerTitle(lines[0]); ok {
		sb.WriteString("### ")
		sb.WriteString(markdownEscaper.Replace(title))
		sb.WriteString("\n\n")
		lines = lines[1:]
		for _, line := range lines {
			sb.WriteString("- ")
			sb.WriteString(markdownEscaper.Replace(line))
			sb.WriteString("\n")
		}
		return sb.String()
	}

	for i, line := range lines {
		if i > 0 {
			sb.WriteString("  \n")
		}
		sb.WriteString(markdownEscaper.Replace(line))
	}
	sb.WriteString("\n")
	return sb.String()
}

func bannerTitle(line string) (string, bool) {
	if !strings.HasPrefix(line, "===") || !strings.HasSuffix(line, "===") || len(line) < 7 {
		return "", false
	}
	return strings.TrimSpace(strings.Trim(line, "=")), true
}
