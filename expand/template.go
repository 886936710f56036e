// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expand

import (
	"strings"
)

// Template is a parsed path template.
// It stores literal text and placeholders as separate tokens so expansion
// never needs string replacement.
type Template struct {
	raw    string
	tokens []token
	names  []string // distinct placeholder names in order of first appearance
}

type token struct {
	param bool   // true if placeholder, false if literal text
	value string // literal text or placeholder name
}

// Parse parses a path template.
//
// Placeholders are written as {name}, {name: regex} (the regex is ignored) or
// as a whole path segment :name. Everything else is literal text.
//
//	"/users/{userId}/posts/:postId" -> ["/users/", {userId}, "/posts/", {postId}]
func Parse(template string) (*Template, error) {
	t := &Template{raw: template}
	seen := make(map[string]bool)

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.tokens = append(t.tokens, token{value: lit.String()})
			lit.Reset()
		}
	}
	addParam := func(name string) {
		flush()
		t.tokens = append(t.tokens, token{param: true, value: name})
		if !seen[name] {
			seen[name] = true
			t.names = append(t.names, name)
		}
	}

	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == '{':
			end := closingBrace(template, i)
			if end < 0 {
				return nil, &Error{Template: template, Err: ErrMalformedTemplate}
			}
			name, _, _ := strings.Cut(template[i+1:end], ":")
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, &Error{Template: template, Err: ErrMalformedTemplate}
			}
			addParam(name)
			i = end + 1
		case c == ':' && (i == 0 || template[i-1] == '/'):
			end := i + 1
			for end < len(template) && template[end] != '/' && template[end] != '?' {
				end++
			}
			if end == i+1 {
				return nil, &Error{Template: template, Err: ErrMalformedTemplate}
			}
			addParam(template[i+1 : end])
			i = end
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()

	return t, nil
}

// MustParse is like Parse but panics if the template is malformed.
func MustParse(template string) *Template {
	t, err := Parse(template)
	if err != nil {
		panic(err)
	}
	return t
}

// closingBrace returns the index of the brace closing the one at start,
// allowing nested braces inside a regex, or -1.
func closingBrace(s string, start int) int {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// String returns the template as it was parsed.
func (t *Template) String() string {
	return t.raw
}

// Names returns the distinct placeholder names in order of first appearance.
func (t *Template) Names() []string {
	return append([]string(nil), t.names...)
}

// Rewrite returns the template with every placeholder replaced by
// placeholder(name) and literal text kept as is.
//
//	MustParse("/users/{id}").Rewrite(func(n string) string { return ":" + n }) // "/users/:id"
func (t *Template) Rewrite(placeholder func(name string) string) string {
	var buf strings.Builder
	for _, tok := range t.tokens {
		if tok.param {
			buf.WriteString(placeholder(tok.value))
		} else {
			buf.WriteString(tok.value)
		}
	}
	return buf.String()
}
