// Package urltemplate expands "{name}" placeholders in endpoint paths.
package urltemplate

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

var (
	// ErrMalformed reports an unbalanced or empty placeholder.
	ErrMalformed = errors.New("malformed url template")
	// ErrMissingParam reports a placeholder without a value.
	ErrMissingParam = errors.New("missing template parameter")
	// ErrUnusedParam reports a value that no placeholder consumed.
	ErrUnusedParam = errors.New("unused template parameter")
)

// Expand replaces every {name} in tmpl with the path-escaped value of params[name].
// Every placeholder must be bound and every parameter must be consumed.
func Expand(tmpl string, params map[string]string) (string, error) {
	var b strings.Builder
	used := make(map[string]struct{}, len(params))

	rest := tmpl
	for {
		open := strings.IndexAny(rest, "{}")
		if open < 0 {
			b.WriteString(rest)
			break
		}
		if rest[open] == '}' {
			return "", fmt.Errorf("%w: stray '}' in %q", ErrMalformed, tmpl)
		}
		b.WriteString(rest[:open])
		rest = rest[open+1:]

		end := strings.IndexAny(rest, "{}")
		if end < 0 || rest[end] == '{' {
			return "", fmt.Errorf("%w: unterminated placeholder in %q", ErrMalformed, tmpl)
		}
		name := rest[:end]
		if name == "" {
			return "", fmt.Errorf("%w: empty placeholder in %q", ErrMalformed, tmpl)
		}
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrMissingParam, name)
		}
		b.WriteString(url.PathEscape(value))
		used[name] = struct{}{}
		rest = rest[end+1:]
	}

	if len(used) != len(params) {
		var unused []string
		for name := range params {
			if _, ok := used[name]; !ok {
				unused = append(unused, name)
			}
		}
		sort.Strings(unused)
		return "", fmt.Errorf("%w: %s", ErrUnusedParam, strings.Join(unused, ", "))
	}

	return b.String(), nil
}
