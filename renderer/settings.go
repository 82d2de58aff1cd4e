package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/khata"
)

// SettingsMarkdown renders the shop configuration record.
func SettingsMarkdown(s khata.Settings) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Settings\n\n", s.ShopName)
	fmt.Fprintln(&b, "| Setting | Value |")
	fmt.Fprintln(&b, "|:---|:---|")
	fmt.Fprintf(&b, "| Shop Name | %s |\n", s.ShopName)
	fmt.Fprintf(&b, "| Language | %s |\n", s.Language)
	fmt.Fprintf(&b, "| Currency | %s |\n", s.Currency)
	fmt.Fprintf(&b, "| Developer | %s |\n", s.Developer)
	return b.String()
}
