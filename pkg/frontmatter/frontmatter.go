// Package frontmatter reads and merges the YAML header at the top of a
// markdown document.
//
// A header is a first line of exactly "---", followed by YAML, closed by a
// line of "---" or "...". Merging keeps unrelated keys in place, including
// their order and comments.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	delimiter    = "---"
	endDelimiter = "..."
)

var (
	ErrInvalidHeader = errors.New("invalid frontmatter header")
	ErrEmptyKey      = errors.New("empty frontmatter key")
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Field is one key/value merge instruction. Value must be a string or an int.
type Field struct {
	Key       string
	Value     any
	Overwrite bool
}

// Split separates the header text from the body. found is false when content
// has no header, in which case body is content itself.
func Split(content string) (header, body string, found bool) {
	first, _, ok := cutLine(content)
	if !ok || strings.TrimRight(first, "\r") != delimiter {
		return "", content, false
	}

	start := len(first) + 1
	offset := start
	for {
		line, rest, hasNewline := cutLine(content[offset:])
		trimmed := strings.TrimRight(line, "\r")
		if trimmed == delimiter || trimmed == endDelimiter {
			return content[start:offset], rest, true
		}
		if !hasNewline {
			return "", content, false
		}
		offset += len(line) + 1
	}
}

// Fields decodes the header into a plain map. A document without header
// yields an empty map.
func Fields(content string) (map[string]any, error) {
	header, _, found := Split(content)
	out := map[string]any{}
	if !found || strings.TrimSpace(header) == "" {
		return out, nil
	}
	if err := yaml.Unmarshal([]byte(header), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	return out, nil
}

// Merge applies fields in order. Existing keys are replaced only when the
// field allows overwriting; missing keys are appended. changed is false, and
// content is returned untouched, when nothing differs.
func Merge(content string, fields []Field) (string, bool, error) {
	header, body, found := Split(content)
	if !found {
		body = content
	}

	doc, err := parseHeader(header)
	if err != nil {
		return content, false, err
	}
	root := doc.Content[0]

	changed := false
	for _, f := range fields {
		if f.Key == "" {
			return content, false, ErrEmptyKey
		}
		value, err := valueNode(f.Value)
		if err != nil {
			return content, false, fmt.Errorf("key %q: %w", f.Key, err)
		}
		if applyField(root, f.Key, value, f.Overwrite) {
			changed = true
		}
	}
	if !changed {
		return content, false, nil
	}

	rendered, err := render(doc)
	if err != nil {
		return content, false, err
	}
	return delimiter + "\n" + rendered + delimiter + "\n" + body, true, nil
}

func parseHeader(header string) (*yaml.Node, error) {
	var doc yaml.Node
	if strings.TrimSpace(header) != "" {
		if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
		}
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}},
		}, nil
	}

	if doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: header is not a key/value mapping", ErrInvalidHeader)
	}
	return &doc, nil
}

// applyField reports whether root was modified.
func applyField(root *yaml.Node, key string, value *yaml.Node, overwrite bool) bool {
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != key {
			continue
		}
		if !overwrite {
			return false
		}
		existing := root.Content[i+1]
		if existing.Kind == yaml.ScalarNode && existing.Value == value.Value && existing.ShortTag() == value.ShortTag() {
			return false
		}
		value.LineComment = existing.LineComment
		root.Content[i+1] = value
		return true
	}

	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
	return true
}

// valueNode encodes ints as YAML ints, valid calendar dates as plain
// timestamps and any other text as a string.
func valueNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(val)}, nil
	case string:
		if isCalendarDate(val) {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!timestamp", Value: val}, nil
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: val}, nil
	}
	return nil, fmt.Errorf("unsupported value type %T", v)
}

// isCalendarDate rejects out-of-range values such as 2025-99-99, which YAML
// readers cannot decode as timestamps.
func isCalendarDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func render(doc *yaml.Node) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}
	return buf.String(), nil
}

func cutLine(s string) (line, rest string, hasNewline bool) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}
