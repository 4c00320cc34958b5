package dashboards

import (
	"fmt"
	"regexp"
	"strings"
)

// InvalidPatternError reports a title pattern that does not compile as a
// regular expression after glob translation.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// CompilePattern compiles a user-supplied title pattern case-insensitively.
// Glob-style `*` wildcards are rewritten to `.*` first; every other character
// keeps its regular-expression meaning, so plain regex patterns work too.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	translated := strings.ReplaceAll(pattern, "*", ".*")
	re, err := regexp.Compile("(?i)" + translated)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// MatchTitles returns the ids of all summaries whose title contains a match
// for re. Substring search, not a full-title match.
func MatchTitles(re *regexp.Regexp, listing []Summary) []string {
	var ids []string
	for _, d := range listing {
		if re.MatchString(d.Title) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}
