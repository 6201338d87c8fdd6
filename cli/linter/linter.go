package linter

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	kingpin "github.com/alecthomas/kingpin/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/TykTechnologies/regexcache"
	intErrors "github.com/TykTechnologies/regexcache/internal/errors"
	logger "github.com/TykTechnologies/regexcache/log"
)

const (
	cmdName = "lint"
	cmdDesc = "Validate files of regular expression patterns"
)

var (
	lint = &linter{}

	log = logger.Get().WithPrefix("linter")
)

type linter struct {
	paths *[]string
	posix *bool
}

// Run validates every pattern in the given files, one pattern per line.
// Blank lines and lines starting with # are skipped. Patterns are compiled
// through a shared cache, so a pattern repeated across files is validated
// once.
//
// It returns the number of valid patterns and one "path:line: message"
// entry per invalid one. The returned error combines every lint failure
// and every unreadable file, or is nil when all patterns are valid. A nil
// compile validates with the default engine.
func Run(compile regexcache.CompileFunc, paths []string) (int, []string, error) {
	cache, err := regexcache.NewWithCompile(regexcache.Default.CacheSize, compile)
	if err != nil {
		return 0, nil, err
	}

	combined := &multierror.Error{}
	combined.ErrorFormat = intErrors.Formatter

	valid := 0
	issues := []string{}

	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			combined = multierror.Append(combined, err)
			continue
		}

		scanner := bufio.NewScanner(file)
		line := 0
		for scanner.Scan() {
			line++
			pattern := strings.TrimSpace(scanner.Text())
			if pattern == "" || strings.HasPrefix(pattern, "#") {
				continue
			}

			if _, err := cache.Get(pattern); err != nil {
				issue := fmt.Errorf("%s:%d: %v", path, line, err)
				issues = append(issues, issue.Error())
				combined = multierror.Append(combined, issue)
				continue
			}
			valid++
		}
		if err := scanner.Err(); err != nil {
			combined = multierror.Append(combined, err)
		}

		file.Close()
	}

	return valid, issues, combined.ErrorOrNil()
}

func (l *linter) lint(_ *kingpin.ParseContext) error {
	var compile regexcache.CompileFunc
	if *l.posix {
		compile = regexp.CompilePOSIX
	}

	valid, issues, err := Run(compile, *l.paths)
	if err != nil {
		for _, issue := range issues {
			log.Error(issue)
		}
		return err
	}

	log.Infof("linted %d patterns, all valid", valid)
	return nil
}

// AddTo registers the lint subcommand.
func AddTo(app *kingpin.Application) {
	cmd := app.Command(cmdName, cmdDesc)
	lint.paths = cmd.Arg("files", "Pattern files to lint, one pattern per line").Required().ExistingFiles()
	lint.posix = cmd.Flag("posix", "Validate with POSIX ERE semantics").Bool()
	cmd.Action(lint.lint)
}
