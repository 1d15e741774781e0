package trellis

import (
	"strings"

	"github.com/grafana/regexp"
)

const (
	paramMarker           = ":"
	wildcardToken         = "*"
	trailingWildcardToken = "**"
)

// separatorRegExp matches the whitespace and slashes surrounding a path or
// pattern.
var separatorRegExp = regexp.MustCompile(`^[\s/]+|[\s/]+$`)

type segmentKind int

const (
	literalSegment segmentKind = iota
	paramSegment
	wildcardSegment
	trailingWildcardSegment
)

type segment struct {
	kind  segmentKind
	value string
	// name is the capture key for param and wildcard segments.
	name string
}

// splitPath strips the surrounding separators from path and splits it on
// slashes. The root path yields an empty slice.
func splitPath(path string) []string {
	path = separatorRegExp.ReplaceAllString(path, "")
	if path == "" {
		return []string{}
	}
	return strings.Split(path, "/")
}

// parseSegments converts a route pattern into segments. Anything following a
// trailing wildcard is dropped, and the second return value reports whether
// that happened.
func parseSegments(patternStr string) ([]segment, bool) {
	parts := splitPath(patternStr)
	segments := make([]segment, 0, len(parts))

	for i, part := range parts {
		switch {
		case part == trailingWildcardToken:
			segments = append(segments, segment{
				kind:  trailingWildcardSegment,
				value: part,
				name:  trailingWildcardToken,
			})
			return segments, i != len(parts)-1
		case part == wildcardToken:
			segments = append(segments, segment{
				kind:  wildcardSegment,
				value: part,
				name:  wildcardToken,
			})
		case strings.HasPrefix(part, paramMarker):
			segments = append(segments, segment{
				kind:  paramSegment,
				value: part,
				name:  strings.TrimPrefix(part, paramMarker),
			})
		default:
			segments = append(segments, segment{
				kind:  literalSegment,
				value: part,
			})
		}
	}

	return segments, false
}
