package cli

import (
	"os"

	kingpin "github.com/alecthomas/kingpin/v2"

	"github.com/TykTechnologies/regexcache/cli/linter"
	"github.com/TykTechnologies/regexcache/cli/matcher"
)

const (
	appName = "regexcache"
	appDesc = "Cached regular expression toolkit"
)

var app *kingpin.Application

// Init sets up the application and registers every subcommand.
func Init(version string) *kingpin.Application {
	app = kingpin.New(appName, appDesc)
	app.Version(version)
	app.HelpFlag.Short('h')

	linter.AddTo(app)
	matcher.AddTo(app)

	return app
}

// Parse parses the command line arguments, exiting on error.
func Parse() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
}
