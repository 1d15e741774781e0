package trellis

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrDecodeURL is returned when a request URL cannot be percent-decoded.
var ErrDecodeURL = errors.New("failed to decode request url")

// MatchResult is the outcome of a lookup. A result without handlers means no
// route was found, whether the method is unknown, no route reaches the path,
// or the path stops on a node that no pattern terminates at.
type MatchResult struct {
	// Handlers is the chain registered for the matched route.
	Handlers []Handler
	// Route is the pattern string the chain was registered with.
	Route string
	// Params holds the captured path parameters. It is never nil.
	Params Params
	// Remainder holds the segments captured by a trailing wildcard.
	Remainder []string
}

// Matched reports whether the result carries a handler chain.
func (r MatchResult) Matched() bool {
	return len(r.Handlers) != 0
}

func emptyMatchResult() MatchResult {
	return MatchResult{Params: Params{}}
}

// Match finds the handler chain registered for method and url. The query
// string and fragment of url are ignored. The path is split into segments
// first and each segment is then percent-decoded, so an encoded slash is
// part of a segment's value rather than a separator.
//
// At every segment a literal child is preferred, then a trailing wildcard,
// then a parameter. The walk never backtracks. Match does not modify the
// table and is safe for concurrent use once the table is built. The only
// error it returns wraps ErrDecodeURL; finding no route is not an error.
func (t *RouteTable) Match(method, rawURL string) (MatchResult, error) {
	segments, err := urlSegments(rawURL)
	if err != nil {
		return emptyMatchResult(), err
	}

	root, ok := t.roots[method]
	if !ok {
		return emptyMatchResult(), nil
	}

	return t.walk(root, segments), nil
}

// urlSegments splits the raw path before decoding, so an escaped separator
// such as %2F stays inside its segment.
func urlSegments(rawURL string) ([]string, error) {
	segments := splitPath(stripQuery(rawURL))
	for i, rawSegment := range segments {
		if !strings.Contains(rawSegment, "%") {
			continue
		}
		decodedSegment, err := url.PathUnescape(rawSegment)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrDecodeURL, rawURL, err)
		}
		segments[i] = decodedSegment
	}
	return segments, nil
}

func (t *RouteTable) walk(root nodeID, segments []string) MatchResult {
	result := emptyMatchResult()
	length := len(segments)
	current := root

	for i, currentSegment := range segments {
		currentNode := t.arena.get(current)

		if child, ok := currentNode.literals[currentSegment]; ok {
			current = child
			continue
		}

		if currentNode.trailing != noNode {
			remainder := append([]string(nil), segments[i:]...)
			result.Params[trailingWildcardToken] = strings.Join(remainder, "/")
			result.Remainder = remainder
			return t.fill(result, currentNode.trailing)
		}

		if child, ok := t.paramChildFor(currentNode, length); ok {
			result.Params[t.arena.get(child).name] = currentSegment
			current = child
			continue
		}

		return emptyMatchResult()
	}

	// A node with no chain of its own defers to a trailing wildcard below it,
	// which then captures nothing.
	currentNode := t.arena.get(current)
	if !currentNode.isTerminal() && currentNode.trailing != noNode &&
		t.arena.get(currentNode.trailing).isTerminal() {
		result.Params[trailingWildcardToken] = ""
		result.Remainder = []string{}
		return t.fill(result, currentNode.trailing)
	}

	return t.fill(result, current)
}

// paramChildFor picks the parameter child for a path of length segments. An
// exact length entry wins. Otherwise the open entry with the greatest minimum
// length not exceeding length is used, so the choice does not depend on the
// order patterns were registered in.
func (t *RouteTable) paramChildFor(currentNode *node, length int) (nodeID, bool) {
	if child, ok := currentNode.params[length]; ok {
		return child, true
	}

	best := -1
	for minLength := range currentNode.openParams {
		if minLength <= length && minLength > best {
			best = minLength
		}
	}
	if best == -1 {
		return noNode, false
	}
	return currentNode.openParams[best], true
}

func (t *RouteTable) fill(result MatchResult, id nodeID) MatchResult {
	terminal := t.arena.get(id)
	result.Handlers = terminal.handlers
	result.Route = terminal.route
	return result
}
