package sqm

import (
	"iter"
	"regexp"
	"strings"
)

// LineKind represents the production a line of an SQM document matched.
type LineKind int8

// These kinds are yielded from [Lines].
const (
	ObjectOpen = LineKind(iota)
	ArrayOpen
	InlineArray
	Close
	Brace
	Assignment
	Element
	Error
)

func (k LineKind) String() string {
	switch k {
	case ObjectOpen:
		return "ObjectOpen"
	case ArrayOpen:
		return "ArrayOpen"
	case InlineArray:
		return "InlineArray"
	case Close:
		return "Close"
	case Brace:
		return "Brace"
	case Assignment:
		return "Assignment"
	case Element:
		return "Element"
	case Error:
		return "Error"
	default:
		panic("Unknown LineKind")
	}
}

func (k LineKind) GoString() string {
	return k.String()
}

// A Line is a classified line of input.
//
// Key is set for the open, inline array and assignment productions. Content
// holds the unparsed value: the right hand side of an assignment, the text
// between the braces of an inline array, or the whole line for an element.
// Raw is the trimmed line, and Err is set for an [Error].
type Line struct {
	Kind    LineKind
	Key     string
	Content string
	Raw     string
	Err     error
}

var lineRegexp = regexp.MustCompile("\r\n|\r|\n")

func lines(input string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lno := 1
		for match := lineRegexp.FindStringIndex(input); match != nil; match = lineRegexp.FindStringIndex(input) {
			if !yield(lno, input[:match[0]]) {
				return
			}
			input = input[match[1]:]
			lno++
		}
		yield(lno, input)
	}
}

var (
	openRegex   = regexp.MustCompile(`(?i)^class(?:\s+(?P<class>.*))?$|^(?P<array>.*)\[\]=$`)
	inlineRegex = regexp.MustCompile(`(?i)^(.*)\[\]=\{(.*)\};$`)
)

var (
	classGroup = openRegex.SubexpIndex("class")
	arrayGroup = openRegex.SubexpIndex("array")
)

func validKey(key string) bool {
	return key != "" && !strings.ContainsAny(key, `;={}"`)
}

func classify(data string) Line {
	line := Line{Raw: data}

	if match := openRegex.FindStringSubmatch(data); match != nil {
		line.Kind = ObjectOpen
		key := match[classGroup]
		if match[arrayGroup] != "" {
			line.Kind = ArrayOpen
			key = match[arrayGroup]
		}
		line.Key = strings.TrimSpace(key)
		if !validKey(line.Key) {
			return Line{Kind: Error, Err: ErrMissingKey, Raw: data}
		}
		return line
	}

	if match := inlineRegex.FindStringSubmatch(data); match != nil {
		line.Kind = InlineArray
		line.Key = strings.TrimSpace(match[1])
		line.Content = match[2]
		if !validKey(line.Key) {
			return Line{Kind: Error, Err: ErrMissingKey, Raw: data}
		}
		return line
	}

	switch {
	case data == "};":
		line.Kind = Close
	case data == "{":
		line.Kind = Brace
	case strings.HasSuffix(data, ";"):
		key, value, found := strings.Cut(data, "=")
		if !found {
			return Line{Kind: Error, Err: ErrMissingValue, Raw: data}
		}
		line.Kind = Assignment
		line.Key = strings.TrimSpace(key)
		line.Content = strings.TrimSpace(value)
		if !validKey(line.Key) {
			return Line{Kind: Error, Err: ErrMissingKey, Raw: data}
		}
	default:
		line.Kind = Element
		line.Content = data
	}
	return line
}

// Lines iterates over the non-blank lines of input with their (1-based) line
// numbers, classifying each one. Lines are trimmed before they are classified.
//
// Classification only looks at a single line, so a [Close] with nothing open,
// or an [Element] that is not inside an array, are reported by [Parse] rather
// than here. An [Error] is yielded for a line that matched a production but
// could not be completed, for example "class" with no name.
func Lines(input string) iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for lno, content := range lines(input) {
			data := strings.TrimSpace(content)
			if data == "" {
				continue
			}
			if !yield(lno, classify(data)) {
				return
			}
		}
	}
}
