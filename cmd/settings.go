package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/khata"
	"github.com/etnz/khata/renderer"
	"github.com/google/subcommands"
)

type settingsCmd struct {
	shopName string
	language string
	currency string
}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the shop settings" }
func (*settingsCmd) Usage() string {
	return `settings [-shop <name>] [-language <English|Urdu>] [-currency <symbol>]

  Without flags, shows the current shop settings. With flags, updates the
  given settings and leaves the others untouched.
`
}

func (c *settingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.shopName, "shop", "", "Shop name shown on reports")
	f.StringVar(&c.language, "language", "", "Display language (English or Urdu)")
	f.StringVar(&c.currency, "currency", "", "Currency symbol (e.g. Rs., $, €, £)")
}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book := LoadBook()

	var patch khata.SettingsPatch
	if c.shopName != "" {
		patch.ShopName = &c.shopName
	}
	if c.language != "" {
		lang := khata.Language(c.language)
		patch.Language = &lang
	}
	if c.currency != "" {
		patch.Currency = &c.currency
	}

	if patch == (khata.SettingsPatch{}) {
		printMarkdown(renderer.SettingsMarkdown(book.Settings()))
		return subcommands.ExitSuccess
	}

	settings, err := book.UpdateSettings(patch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if status := SaveBook(book); status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.SettingsMarkdown(settings))
	return subcommands.ExitSuccess
}
