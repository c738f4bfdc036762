package directive

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/fatih/structtag"

	"nxdate-generator/internal/match"
)

// CommentPrefix starts every directive comment, right after the "//".
const CommentPrefix = "nxdate:"

// Parameter keys.
const (
	keyOrigin = "originPattern"
	keyTarget = "targetPattern"
	keyPrefix = "prefix"
)

// ErrMalformed is returned for directives that cannot be parsed.
var ErrMalformed = errors.New("malformed directive")

// Comment extracts the directive payload from a raw comment line such as
// "//nxdate:longToDate prefix:\"nx_\"". It reports false for ordinary comments.
func Comment(line string) (string, bool) {
	text, ok := strings.CutPrefix(line, "//")
	if !ok {
		return "", false
	}

	return strings.CutPrefix(text, CommentPrefix)
}

// Split splits a payload into its keyword and the raw parameter list.
func Split(payload string) (string, string) {
	payload = strings.TrimSpace(payload)

	i := strings.IndexFunc(payload, unicode.IsSpace)
	if i < 0 {
		return payload, ""
	}

	return payload[:i], strings.TrimSpace(payload[i:])
}

// IsMarker reports whether the payload is the struct-level extension marker.
func IsMarker(payload string) bool {
	keyword, _ := Split(payload)
	return keyword == KeywordExtension
}

// IsIgnore reports whether the payload excludes a field from generation.
func IsIgnore(payload string) bool {
	keyword, _ := Split(payload)
	return keyword == KeywordIgnore
}

// rule describes the accepted parameters of one keyword.
type rule struct {
	required []string
	optional []string
	build    func(p map[string]string) Directive
}

var rules = map[string]rule{
	KeywordStringToString: {
		required: []string{keyOrigin, keyTarget},
		optional: []string{keyPrefix},
		build: func(p map[string]string) Directive {
			return TextToText{OriginPattern: p[keyOrigin], TargetPattern: p[keyTarget], NamePrefix: p[keyPrefix]}
		},
	},
	KeywordStringToDate: {
		required: []string{keyOrigin},
		optional: []string{keyPrefix},
		build: func(p map[string]string) Directive {
			return TextToDate{OriginPattern: p[keyOrigin], NamePrefix: p[keyPrefix]}
		},
	},
	KeywordLongToString: {
		required: []string{keyTarget},
		optional: []string{keyPrefix},
		build: func(p map[string]string) Directive {
			return IntegerToText{TargetPattern: p[keyTarget], NamePrefix: p[keyPrefix]}
		},
	},
	KeywordLongToDate: {
		optional: []string{keyPrefix},
		build: func(p map[string]string) Directive {
			return IntegerToDate{NamePrefix: p[keyPrefix]}
		},
	},
	KeywordDateToString: {
		required: []string{keyTarget},
		optional: []string{keyPrefix},
		build: func(p map[string]string) Directive {
			return DateToText{TargetPattern: p[keyTarget], NamePrefix: p[keyPrefix]}
		},
	},
}

// Parse parses a conversion directive payload (the text after "//nxdate:").
func Parse(payload string) (Directive, error) {
	keyword, raw := Split(payload)

	r, ok := rules[keyword]
	if !ok {
		return nil, fmt.Errorf("%w: unknown keyword %q%s", ErrMalformed, keyword, didYouMean(match.SuggestSorted(keyword, rules)))
	}

	params, err := parseParams(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, keyword, err)
	}

	for key := range params {
		if !slices.Contains(r.required, key) && !slices.Contains(r.optional, key) {
			hint := didYouMean(match.Suggest(key, slices.Concat(r.required, r.optional)))
			return nil, fmt.Errorf("%w: %s: unknown parameter %q%s", ErrMalformed, keyword, key, hint)
		}
	}

	for _, key := range r.required {
		if params[key] == "" {
			return nil, fmt.Errorf("%w: %s: missing %s", ErrMalformed, keyword, key)
		}
	}

	return r.build(params), nil
}

// parseParams reads key:"value" pairs. Values keep their commas.
func parseParams(raw string) (map[string]string, error) {
	params := make(map[string]string)
	if raw == "" {
		return params, nil
	}

	tags, err := structtag.Parse(raw)
	if err != nil {
		return nil, err
	}

	if tags == nil {
		return params, nil
	}

	for _, tag := range tags.Tags() {
		if _, dup := params[tag.Key]; dup {
			return nil, fmt.Errorf("duplicate parameter %q", tag.Key)
		}

		params[tag.Key] = tag.Value()
	}

	return params, nil
}

func didYouMean(suggestion string) string {
	if suggestion == "" {
		return ""
	}

	return fmt.Sprintf(" (did you mean %q?)", suggestion)
}
