package matcher

import (
	"bufio"
	"fmt"
	"io"
	"os"

	kingpin "github.com/alecthomas/kingpin/v2"

	"github.com/TykTechnologies/regexcache"
	logger "github.com/TykTechnologies/regexcache/log"
	"github.com/TykTechnologies/regexcache/regexp"
)

const (
	cmdName = "match"
	cmdDesc = "Filter input lines through a cached pattern"
)

var (
	match = &matcher{}

	log = logger.Get().WithPrefix("matcher")
)

type matcher struct {
	pattern    *string
	paths      *[]string
	ignoreCase *bool
	invert     *bool
	countOnly  *bool
}

// Run filters the lines of r through pattern, writing the selected lines to
// w, and returns how many lines were selected. invert selects the lines
// that do not match. The pattern is compiled through the shared cache, so
// repeated runs with the same pattern skip compilation.
func Run(pattern string, opts regexcache.Options, invert bool, r io.Reader, w io.Writer) (int, error) {
	re, err := regexp.Compile(opts.Expr(pattern))
	if err != nil {
		return 0, err
	}

	count := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if re.MatchString(line) == invert {
			continue
		}

		count++
		if _, err := fmt.Fprintln(w, line); err != nil {
			return count, err
		}
	}

	return count, scanner.Err()
}

func (m *matcher) run(_ *kingpin.ParseContext) error {
	opts := regexcache.Options{CaseInsensitive: *m.ignoreCase}

	var in io.Reader = os.Stdin
	if len(*m.paths) > 0 {
		readers := make([]io.Reader, 0, len(*m.paths))
		for _, path := range *m.paths {
			file, err := os.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()
			readers = append(readers, file)
		}
		in = io.MultiReader(readers...)
	}

	out := io.Writer(os.Stdout)
	if *m.countOnly {
		out = io.Discard
	}

	count, err := Run(*m.pattern, opts, *m.invert, in, out)
	if err != nil {
		return err
	}

	if *m.countOnly {
		fmt.Println(count)
	}
	log.Debugf("selected %d lines", count)

	return nil
}

// AddTo registers the match subcommand.
func AddTo(app *kingpin.Application) {
	cmd := app.Command(cmdName, cmdDesc)
	match.pattern = cmd.Arg("pattern", "Regular expression to match lines against").Required().String()
	match.paths = cmd.Arg("files", "Files to read instead of stdin").ExistingFiles()
	match.ignoreCase = cmd.Flag("ignore-case", "Case insensitive matching").Short('i').Bool()
	match.invert = cmd.Flag("invert", "Select non-matching lines").Short('v').Bool()
	match.countOnly = cmd.Flag("count", "Print only the number of selected lines").Short('c').Bool()
	cmd.Action(match.run)
}
