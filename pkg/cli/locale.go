package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/maham-hq/maham/pkg/domain/types"
	"github.com/maham-hq/maham/pkg/service/i18n"
	"github.com/urfave/cli/v3"
)

func cmdLocale() *cli.Command {
	return &cli.Command{
		Name:  "locale",
		Usage: "Validate the embedded locale catalogs",
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := i18n.New()
			if err != nil {
				return goerr.Wrap(err, "failed to load locale catalogs")
			}

			total := len(svc.Keys())
			incomplete := false
			for _, lang := range types.AllLangs() {
				missing := svc.MissingKeys(lang)
				if len(missing) == 0 {
					color.Green("✔ %s: %d/%d keys", lang, total, total)
					continue
				}

				incomplete = true
				color.Red("✘ %s: %d/%d keys", lang, total-len(missing), total)
				for _, key := range missing {
					color.Yellow("    missing: %s", key)
				}
			}

			if incomplete {
				return goerr.New("locale catalogs are incomplete")
			}
			return nil
		},
	}
}
