package sinks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/finlog/finlog/core"
)

// Default output templates. The console keeps records terse; the file format
// carries the timestamp and logger name as well.
const (
	DefaultConsoleTemplate = "Log:{Level}: {Message}"
	DefaultFileTemplate    = "{Timestamp} - {Name} - {Level} - {Message}"
)

// defaultTimestampLayout formats {Timestamp} when no layout is given.
const defaultTimestampLayout = "2006-01-02 15:04:05"

// templateToken is one element of a parsed output template.
type templateToken interface {
	render(record *core.Record) string
}

// textToken is literal text between fields.
type textToken struct {
	text string
}

func (t *textToken) render(*core.Record) string {
	return t.text
}

// fieldToken references a record field, e.g. {Level} or {Timestamp:15:04:05}.
type fieldToken struct {
	name   string
	format string
}

func (t *fieldToken) render(record *core.Record) string {
	switch t.name {
	case "Timestamp":
		layout := t.format
		if layout == "" {
			layout = defaultTimestampLayout
		}
		return record.Timestamp.Format(layout)
	case "Name":
		return record.Name
	case "Level":
		if t.format == "d" {
			return strconv.Itoa(int(record.Level))
		}
		return core.LevelName(record.Level)
	case "Message":
		return record.Message
	case "NewLine":
		return "\n"
	}
	return ""
}

// templateFields are the names a field token may reference. The record
// schema is closed, so anything else is a configuration mistake.
var templateFields = map[string]bool{
	"Timestamp": true,
	"Name":      true,
	"Level":     true,
	"Message":   true,
	"NewLine":   true,
}

// Template is a parsed output template for rendering records as text.
type Template struct {
	// Raw is the original template string.
	Raw string

	tokens []templateToken
}

// ParseTemplate parses an output template. Fields are written in braces with
// an optional format after a colon: {Timestamp}, {Timestamp:15:04:05},
// {Name}, {Level}, {Level:d}, {Message}, {NewLine}. Literal braces are
// escaped by doubling. Unknown fields and unclosed braces are reported
// immediately so a bad format never attaches a half-configured sink.
func ParseTemplate(template string) (*Template, error) {
	var tokens []templateToken
	runes := []rune(template)
	i := 0

	for i < len(runes) {
		if runes[i] == '{' {
			if i+1 < len(runes) && runes[i+1] == '{' {
				tokens = append(tokens, &textToken{text: "{"})
				i += 2
				continue
			}
			start := i
			i++
			for i < len(runes) && runes[i] != '}' {
				i++
			}
			if i >= len(runes) {
				return nil, fmt.Errorf("unclosed field at position %d in %q", start, template)
			}
			name, format := string(runes[start+1:i]), ""
			if colon := strings.IndexByte(name, ':'); colon >= 0 {
				name, format = name[:colon], name[colon+1:]
			}
			if !templateFields[name] {
				return nil, fmt.Errorf("unknown field %q in template %q", name, template)
			}
			tokens = append(tokens, &fieldToken{name: name, format: format})
			i++
			continue
		}

		if runes[i] == '}' && i+1 < len(runes) && runes[i+1] == '}' {
			tokens = append(tokens, &textToken{text: "}"})
			i += 2
			continue
		}

		start := i
		for i < len(runes) && runes[i] != '{' && !(runes[i] == '}' && i+1 < len(runes) && runes[i+1] == '}') {
			i++
		}
		tokens = append(tokens, &textToken{text: string(runes[start:i])})
	}

	return &Template{Raw: template, tokens: tokens}, nil
}

// MustParseTemplate is like ParseTemplate but panics on error. It exists for
// the package's own constant defaults, which are exercised by every test.
func MustParseTemplate(template string) *Template {
	t, err := ParseTemplate(template)
	if err != nil {
		panic(err)
	}
	return t
}

// Render renders one record through the template.
func (t *Template) Render(record *core.Record) string {
	var sb strings.Builder
	for _, token := range t.tokens {
		sb.WriteString(token.render(record))
	}
	return sb.String()
}

// renderLine renders a record and guarantees a single trailing newline.
func (t *Template) renderLine(record *core.Record) string {
	line := t.Render(record)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	return line
}
