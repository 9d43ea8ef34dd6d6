package generator

import (
	"errors"
	"regexp"
	"strings"
)

// ErrMissingOptionsSection is returned by Extract when the comment block
// never declares an "Options:" section. The extracted Document is still
// returned so callers may proceed with a help-only result.
var ErrMissingOptionsSection = errors.New("comment block has no Options: section")

var (
	// commentLinePattern matches a qualifying comment line: the marker
	// followed by a space, or the marker alone. A shebang line does not
	// qualify, so Seeking skips past it.
	commentLinePattern = regexp.MustCompile(`^#( |$)`)

	// optionsHeaderPattern marks the start of the options section. The
	// line itself still contributes to the help text.
	optionsHeaderPattern = regexp.MustCompile(`^\s*Options:`)

	// optionHeaderPattern recognizes an option declaration:
	//   -<short> --<long> [<argument>] <description>
	// where <argument> is a lowercase-initial identifier. The column at
	// which <description> begins fixes the indent for continuation lines.
	optionHeaderPattern = regexp.MustCompile(`^\s*-(\w)\s+--([A-Za-z0-9-]+)(?:\s+([a-z][A-Za-z0-9_]*))?\s+(\S.*)$`)

	// defaultPattern recognizes a Default: line under an option.
	defaultPattern = regexp.MustCompile(`^\s*Default:\s*(\S.*)$`)
)

// lineKind classifies a line inside the options section. Keeping the
// classification explicit makes the silent-skip fallthrough visible.
type lineKind int

const (
	lineIgnored lineKind = iota
	lineHeader
	lineDefault
	lineContinuation
)

// classified is the result of classifying one options-section line.
type classified struct {
	kind   lineKind
	opt    Option // lineHeader: the declared option
	indent int    // lineHeader: column where the description began
	text   string // lineDefault: the value; lineContinuation: the remainder
}

// classifyOptionLine decides what a marker-stripped line inside the options
// section means. indent is the active continuation width; haveCurrent
// reports whether any option has been declared yet. Patterns are attempted
// in order: header, Default:, continuation; anything else is ignored.
func classifyOptionLine(s string, indent int, haveCurrent bool) classified {
	if m := optionHeaderPattern.FindStringSubmatchIndex(s); m != nil {
		opt := Option{
			Short:       s[m[2]:m[3]],
			Long:        s[m[4]:m[5]],
			Description: s[m[8]:m[9]],
		}
		if m[6] >= 0 {
			opt.Argument = s[m[6]:m[7]]
		}
		return classified{kind: lineHeader, opt: opt, indent: m[8]}
	}
	if !haveCurrent {
		return classified{kind: lineIgnored}
	}
	if m := defaultPattern.FindStringSubmatch(s); m != nil {
		return classified{kind: lineDefault, text: m[1]}
	}
	// A continuation line carries exactly indent spaces before its text.
	// One column short of the active width does not continue the option.
	if len(s) > indent && strings.TrimLeft(s[:indent], " ") == "" {
		return classified{kind: lineContinuation, text: s[indent:]}
	}
	return classified{kind: lineIgnored}
}

type extractState int

const (
	stateSeeking extractState = iota
	stateInHelp
)

// extractor accumulates the help text and option list while feeding lines
// through the comment-block state machine.
type extractor struct {
	state     extractState
	help      strings.Builder
	options   []Option
	inOptions bool
	indent    int // continuation width of the most recent option header
}

// Extract parses a script's lines into a Document. It consumes the leading
// comment block: the contiguous run of comment lines starting at the first
// one and ending at the first empty or whitespace-only line. Stray
// non-comment lines inside the block are skipped without terminating it;
// existing option-declaration comments rely on that tolerance.
//
// If no Options: section is found the Document (help only) is returned
// together with ErrMissingOptionsSection.
func Extract(lines []string) (*Document, error) {
	e := &extractor{}
	for _, line := range lines {
		if !e.feed(line) {
			break
		}
	}
	doc := &Document{Help: e.help.String(), Options: e.options}
	if !e.inOptions {
		return doc, ErrMissingOptionsSection
	}
	return doc, nil
}

// ExtractSource is a convenience wrapper splitting raw file contents into
// lines before extraction.
func ExtractSource(src string) (*Document, error) {
	return Extract(strings.Split(src, "\n"))
}

// feed processes one line and reports whether extraction should continue.
func (e *extractor) feed(line string) bool {
	switch e.state {
	case stateSeeking:
		if !commentLinePattern.MatchString(line) {
			return true
		}
		e.state = stateInHelp
		e.consume(stripMarker(line))
		return true
	default: // stateInHelp
		if strings.TrimSpace(line) == "" {
			return false
		}
		if !commentLinePattern.MatchString(line) {
			return true
		}
		e.consume(stripMarker(line))
		return true
	}
}

// consume appends a marker-stripped line to the help text and, once the
// options section has started, interprets it against the option patterns.
func (e *extractor) consume(text string) {
	e.help.WriteString(text)
	e.help.WriteByte('\n')

	if !e.inOptions {
		if optionsHeaderPattern.MatchString(text) {
			e.inOptions = true
		}
		return
	}

	switch c := classifyOptionLine(text, e.indent, len(e.options) > 0); c.kind {
	case lineHeader:
		e.options = append(e.options, c.opt)
		e.indent = c.indent
	case lineDefault:
		e.options[len(e.options)-1].Value = c.text
	case lineContinuation:
		cur := &e.options[len(e.options)-1]
		cur.Description += "\n" + c.text
	}
}

// stripMarker removes the comment marker and at most one following space.
func stripMarker(line string) string {
	if line == "#" {
		return ""
	}
	return line[2:]
}
