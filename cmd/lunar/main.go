// Command lunar converts between Gregorian and Chinese lunar dates,
// prints month grids, and lists festivals.
//
// Usage:
//
//	lunar convert 2024-02-10
//	lunar reverse 2023 2 1 --leap
//	lunar grid 2024 2
//	lunar month 2023 2 --leap
//	lunar festivals 2024 --db data/lunar.db
//	lunar --encoding gb18030 grid 2024 2 > feb.txt
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("lunar"),
		kong.Description("Chinese lunar calendar conversions for 1901-2100"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	out, err := NewOutput(os.Stdout, cli.Encoding)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(out)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	ctx.FatalIfErrorf(err)
}
