package regexcache

// Options names the regexp flags a pattern can be prefixed with inline. The
// zero value leaves patterns untouched.
type Options struct {
	// CaseInsensitive sets the i flag.
	CaseInsensitive bool
	// MultiLine sets the m flag, making ^ and $ also match at line
	// boundaries.
	MultiLine bool
	// DotMatchesNewLine sets the s flag, making . also match \n.
	DotMatchesNewLine bool
	// Ungreedy sets the U flag, swapping the meaning of x* and x*?.
	Ungreedy bool
}

// Expr returns source prefixed with a flag group for the set options, or
// source unchanged when none are set. Cache keys are the returned text, so
// the same source with different options caches separately.
func (o Options) Expr(source string) string {
	flags := ""
	if o.CaseInsensitive {
		flags += "i"
	}
	if o.MultiLine {
		flags += "m"
	}
	if o.DotMatchesNewLine {
		flags += "s"
	}
	if o.Ungreedy {
		flags += "U"
	}

	if flags == "" {
		return source
	}

	return "(?" + flags + ")" + source
}
