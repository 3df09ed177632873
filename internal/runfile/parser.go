package runfile

import (
	"fmt"
	"iter"
	"strings"
	"unicode"

	"github.com/tacogips/dotool/internal/debug"
)

const utf8BOM = "\uFEFF"

// sourceLine is one physical line. End includes the line break.
type sourceLine struct {
	Number  int
	Start   int
	End     int
	Content string
}

// lines yields the lines of text with their byte offsets.
func lines(text string) iter.Seq[sourceLine] {
	return func(yield func(sourceLine) bool) {
		start, number := 0, 1
		for start < len(text) {
			end := len(text)
			content := text[start:]
			if i := strings.IndexByte(content, '\n'); i >= 0 {
				end = start + i + 1
				content = content[:i]
			}
			content = strings.TrimSuffix(content, "\r")
			if !yield(sourceLine{Number: number, Start: start, End: end, Content: content}) {
				return
			}
			start = end
			number++
		}
	}
}

// ParseDirectives returns the `#!` and `#:` directives in the leading region
// of file, in source order. The leading region ends at the first line that is
// neither blank, a comment, nor a directive.
//
// With reportAllErrors set, the rest of the file is scanned as well and a
// `#:` line after the leading region is an error. Nothing is returned on error.
func ParseDirectives(file SourceFile, reportAllErrors bool) ([]Directive, error) {
	var (
		directives []Directive
		leading    = true
		inComment  bool
	)

	for line := range lines(file.Text) {
		content := line.Content
		contentStart := line.Start
		if line.Start == 0 && strings.HasPrefix(content, utf8BOM) {
			content = content[len(utf8BOM):]
			contentStart = len(utf8BOM)
		}

		if !leading {
			if !reportAllErrors {
				break
			}
			if strings.HasPrefix(strings.TrimLeft(content, " \t"), "#:") {
				loc := location(file.Path, line.Number)
				return nil, newDirectiveError(DirectiveAfterCode, loc,
					"directive at %s appears after the first statement and cannot be converted", loc)
			}
			continue
		}

		if inComment {
			end := strings.Index(content, "*/")
			if end < 0 {
				continue
			}
			var rest string
			rest, inComment = consumeTrivia(content[end+2:])
			if rest != "" {
				leading = false
			}
			continue
		}

		trimmed := strings.TrimLeft(content, " \t")
		span := Span{Start: contentStart, End: line.End}

		switch {
		case line.Number == 1 && strings.HasPrefix(content, "#!"):
			directives = append(directives, &Shebang{Span: span, Text: strings.TrimRight(content, " \t")})

		case strings.HasPrefix(trimmed, "#:"):
			d, err := parseDirective(file.Path, line.Number, span, trimmed[2:])
			if err != nil {
				return nil, err
			}
			directives = append(directives, d)

		default:
			var rest string
			rest, inComment = consumeTrivia(content)
			if rest != "" {
				leading = false
			}
		}
	}

	debug.Debug("[runfile] Parsed %d directive(s) from %s", len(directives), file.Path)
	return directives, nil
}

// consumeTrivia strips horizontal whitespace and comments from the start of
// s. It reports whether s ends inside an unterminated block comment.
func consumeTrivia(s string) (string, bool) {
	for {
		s = strings.TrimLeft(s, " \t\f\v")
		switch {
		case strings.HasPrefix(s, "//"):
			return "", false
		case strings.HasPrefix(s, "/*"):
			end := strings.Index(s[2:], "*/")
			if end < 0 {
				return "", true
			}
			s = s[2+end+2:]
		default:
			return s, false
		}
	}
}

func parseDirective(path string, lineNumber int, span Span, body string) (Directive, error) {
	loc := location(path, lineNumber)
	kind, rest := splitFirstWhitespace(strings.TrimSpace(body))

	switch kind {
	case KindSdk, KindPackage:
		name, version := splitFirstWhitespace(rest)
		if name == "" {
			return nil, newDirectiveError(MissingDirectiveName, loc, "missing name of '%s' at %s", kind, loc)
		}
		if kind == KindSdk {
			return &SdkDirective{Span: span, Name: name, Version: version}, nil
		}
		return &PackageDirective{Span: span, Name: name, Version: version}, nil

	case KindProperty:
		name, value := splitFirstWhitespace(rest)
		if name == "" {
			return nil, newDirectiveError(MissingDirectiveName, loc, "missing name of '%s' at %s", kind, loc)
		}
		if value == "" {
			return nil, newDirectiveError(PropertyMissingParts, loc,
				"the property directive needs to have two parts separated by a space like 'PropertyName PropertyValue': %s", loc)
		}
		if err := validateXMLName(name); err != nil {
			dErr := newDirectiveError(PropertyInvalidName, loc, "invalid property name at %s: %v", loc, err)
			dErr.Cause = err
			return nil, dErr
		}
		return &PropertyDirective{Span: span, Name: name, Value: value}, nil

	default:
		return nil, newDirectiveError(UnrecognizedDirective, loc, "unrecognized directive '%s' at %s", kind, loc)
	}
}

// splitFirstWhitespace splits s at its first whitespace run. Both parts are trimmed.
func splitFirstWhitespace(s string) (string, string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func location(path string, line int) string {
	return fmt.Sprintf("%s:%d", path, line)
}
