package trellis

import (
	"errors"
	"strings"
)

// Pattern represents a parsed route pattern. Patterns support literal
// segments ('/users/list'), named parameters ('/users/:id'), single segment
// wildcards ('/files/*') and trailing wildcards ('/files/**'). Use NewPattern
// to create patterns from strings.
type Pattern struct {
	str       string
	segments  []segment
	truncated bool
}

// NewPattern parses a pattern string. Parsing is permissive and never fails:
// surrounding whitespace and slashes are ignored, and any segments following
// a trailing wildcard are dropped.
func NewPattern(patternStr string) *Pattern {
	segments, truncated := parseSegments(patternStr)
	return &Pattern{
		str:       patternStr,
		segments:  segments,
		truncated: truncated,
	}
}

// String returns the pattern exactly as it was registered.
func (p *Pattern) String() string {
	return p.str
}

// Len returns the number of segments in the pattern.
func (p *Pattern) Len() int {
	return len(p.segments)
}

// IsRoot reports whether the pattern has no segments, i.e. it matches only
// the root path.
func (p *Pattern) IsRoot() bool {
	return len(p.segments) == 0
}

// ParamNames returns the capture keys of the pattern in order. Single
// wildcards are captured as '*' and trailing wildcards as '**'.
func (p *Pattern) ParamNames() []string {
	names := []string{}
	for _, currentSegment := range p.segments {
		if currentSegment.kind != literalSegment {
			names = append(names, currentSegment.name)
		}
	}
	return names
}

// Path creates a path string from the pattern by replacing dynamic segments
// with the provided parameters. If a named parameter is missing an error is
// returned. Wildcard segments are replaced with values from the wildcards
// slice in order; a trailing wildcard with no value left is omitted. If there
// are more single wildcard segments than values an error is returned.
func (p *Pattern) Path(params Params, wildcards []string) (string, error) {
	path := ""
	wildcardIndex := 0

	for _, currentSegment := range p.segments {
		switch currentSegment.kind {
		case literalSegment:
			path += "/" + currentSegment.value
		case paramSegment:
			value, exists := params[currentSegment.name]
			if !exists {
				return "", errors.New("missing required parameter: " + currentSegment.name)
			}
			path += "/" + value
		case wildcardSegment:
			if wildcardIndex >= len(wildcards) {
				return "", errors.New("not enough wildcard values provided")
			}
			path += "/" + wildcards[wildcardIndex]
			wildcardIndex++
		case trailingWildcardSegment:
			if wildcardIndex >= len(wildcards) {
				continue
			}
			if rest := strings.Trim(wildcards[wildcardIndex], "/"); rest != "" {
				path += "/" + rest
			}
			wildcardIndex++
		}
	}

	if path == "" {
		path = "/"
	}

	return path, nil
}
