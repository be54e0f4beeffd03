package game

import (
	"strings"

	"scratch_backend/internal/catalog"
	"scratch_backend/internal/service/draw"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const noPrizeText = "no prize"

var printer = message.NewPrinter(language.English)

// describe текст выигрыша для клиента: "50,000 tokens + 1g gold bean",
// при трех и больше призах - сводка
func describe(res draw.Result) string {
	if !res.IsWin() {
		return noPrizeText
	}

	if len(res.Tiers) > 2 {
		var b strings.Builder
		b.WriteString(printer.Sprintf("%d prizes", len(res.Tiers)))
		if res.TotalTokens > 0 {
			b.WriteString(printer.Sprintf(", %d tokens total", res.TotalTokens))
		}
		if res.SpecialPrizes > 0 {
			b.WriteString(" + gold bean")
		}
		return b.String()
	}

	names := make([]string, 0, len(res.Tiers))
	for _, t := range res.Tiers {
		switch {
		case t.Special && t.Name != "":
			names = append(names, t.Name)
		case t.Special:
			names = append(names, catalog.SpecialPrizeName)
		default:
			names = append(names, printer.Sprintf("%d tokens", t.Value))
		}
	}
	return strings.Join(names, " + ")
}
