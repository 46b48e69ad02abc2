// Copyright 2025 walteh LLC
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

package showcase

import (
	"regexp"
	"strings"
)

const (
	// TagName is the component whose items prop gets rewritten
	TagName = "Showcase"

	// ExcludedTagName suppresses a rewrite when it sits right before the tag
	ExcludedTagName = "Checklist"
)

var (
	// 🔍 propPattern finds the items prop up to the opening bracket of its list
	propPattern = regexp.MustCompile(`items\s*=\s*\{\s*\[`)

	itemPattern   = regexp.MustCompile(`(?s)\{\s*label:\s*"([^"]*)",\s*points:\s*\[(.*?)\]\s*\}`)
	quotedPattern = regexp.MustCompile(`"([^"]*)"`)
)

// 📄 Item is one {label, points} entry of an items list
type Item struct {
	Label  string
	Points []string
}

// 📄 Section is the rewritten {label, body, tone} form of an Item
type Section struct {
	Label string
	Body  string
	Tone  Tone
}

// 📊 Stats describes what a rewrite pass did
type Stats struct {
	Occurrences int // occurrences rewritten
	Sections    int // section records emitted
	Skipped     int // occurrences left alone because the excluded tag precedes them
}

// occurrence is one matched <Showcase ... items={[...]} ... /> span
type occurrence struct {
	start, end int
	leading    string // attributes before items=
	list       string // text between the list brackets
	trailing   string // attributes after the list, before />
}

// 🎯 Rewrite converts every items= occurrence in text to sections=.
// Text without a matching occurrence is returned unchanged.
func Rewrite(text string) string {
	out, _ := RewriteWithStats(text)
	return out
}

// 🎯 RewriteWithStats is Rewrite plus counts of what was changed
func RewriteWithStats(text string) (string, Stats) {
	var (
		stats Stats
		b     strings.Builder
		last  int // end of the text already copied to b
		pos   int // where the next search starts
	)

	sc := newScanner(text)
	for pos < len(text) {
		occ, ok := sc.find(pos)
		if !ok {
			break
		}

		if strings.HasSuffix(text[:occ.start], ExcludedTagName) {
			stats.Skipped++
			pos = occ.start + 1
			continue
		}

		items := ParseItems(occ.list)
		sections := make([]Section, 0, len(items))
		for _, item := range items {
			sections = append(sections, item.Section())
		}

		if stats.Occurrences == 0 {
			b.Grow(len(text))
		}
		b.WriteString(text[last:occ.start])
		b.WriteString(renderOccurrence(occ, sections))

		stats.Occurrences++
		stats.Sections += len(sections)
		last = occ.end
		pos = occ.end
	}

	if stats.Occurrences == 0 {
		return text, stats
	}

	b.WriteString(text[last:])
	return b.String(), stats
}

// scanner finds occurrences left to right.
//
// Heads inside the same tag share one prop search and one list scan, and the
// next '>' is remembered between heads, so a run of heads that never complete
// costs time linear in the text.
type scanner struct {
	text string

	headEnd, tailEnd tagEndIndex

	propFrom, propLimit int
	prop                []int // text bounds of the cached items prop, nil when there is none

	listOpen int // '[' the cached list result belongs to, -1 before the first scan
	list     listResult
}

type listResult struct {
	ok       bool
	close    int // the ']' closing the list
	end      int // just past the "/>"
	trailing string
}

// tagEndIndex remembers the first '>' at or after a position
type tagEndIndex struct {
	from, at int
}

// next returns the index of the first '>' at or after i, or len(text)
func (n *tagEndIndex) next(text string, i int) int {
	if i < n.from || i > n.at {
		n.from = i
		if idx := strings.IndexByte(text[i:], '>'); idx >= 0 {
			n.at = i + idx
		} else {
			n.at = len(text)
		}
	}
	return n.at
}

func newScanner(text string) *scanner {
	return &scanner{
		text:      text,
		headEnd:   tagEndIndex{from: -1, at: -1},
		tailEnd:   tagEndIndex{from: -1, at: -1},
		propLimit: -1,
		listOpen:  -1,
	}
}

// find returns the first complete occurrence starting at or after pos.
// Candidates without an items prop before the end of their tag, with an
// unbalanced list, or that are not self-closed are passed over.
func (s *scanner) find(pos int) (occurrence, bool) {
	const head = "<" + TagName

	for pos < len(s.text) {
		idx := strings.Index(s.text[pos:], head)
		if idx < 0 {
			return occurrence{}, false
		}
		start := pos + idx
		attrs := start + len(head)
		pos = start + 1

		if attrs >= len(s.text) || !isSpace(s.text[attrs]) {
			continue
		}

		prop := s.propAt(attrs, s.headEnd.next(s.text, attrs))
		if prop == nil {
			continue
		}

		open := prop[1] - 1
		list := s.closeList(open)
		if !list.ok {
			continue
		}

		lead := attrs
		for isSpace(s.text[lead]) {
			lead++
		}

		return occurrence{
			start:    start,
			end:      list.end,
			leading:  s.text[lead:prop[0]],
			list:     s.text[open+1 : list.close],
			trailing: list.trailing,
		}, true
	}
	return occurrence{}, false
}

// propAt returns the first items prop in text[i:limit]. A cached result is
// reused while i has not moved past it.
func (s *scanner) propAt(i, limit int) []int {
	cached := s.propLimit == limit && s.propFrom <= i && (s.prop == nil || s.prop[0] >= i)
	if !cached {
		s.propFrom, s.propLimit, s.prop = i, limit, nil
		if loc := propPattern.FindStringIndex(s.text[i:limit]); loc != nil {
			s.prop = []int{i + loc[0], i + loc[1]}
		}
	}
	return s.prop
}

// closeList finds the end of the list opened at text[open] and the
// self-closing tail after it: optional whitespace, '}', attributes, "/>".
func (s *scanner) closeList(open int) listResult {
	if s.listOpen == open {
		return s.list
	}

	var res listResult
	if closeIdx := listEnd(s.text, open); closeIdx >= 0 {
		after := closeIdx + 1
		gt := s.tailEnd.next(s.text, after)

		j := after
		for j < gt && isSpace(s.text[j]) {
			j++
		}
		if gt < len(s.text) && j < gt && s.text[j] == '}' && gt-1 > j && s.text[gt-1] == '/' {
			res = listResult{
				ok:       true,
				close:    closeIdx,
				end:      gt + 1,
				trailing: s.text[j+1 : gt-1],
			}
		}
	}

	s.listOpen, s.list = open, res
	return res
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// listEnd returns the index of the bracket closing the list opened at
// text[open], or -1 when the list does not close.
//
// The scan gives up at a '<' outside a string or a newline inside one. Neither
// can appear in a supported items list, and stopping there keeps every scan
// bounded by the candidate's own line or tag instead of the rest of the document.
func listEnd(text string, open int) int {
	depth := 0
	inString := false
	for i := open; i < len(text); i++ {
		c := text[i]
		if inString {
			switch c {
			case '"':
				inString = false
			case '\n':
				return -1
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		case '<':
			return -1
		}
	}
	return -1
}

// 🔍 ParseItems extracts the {label, points} records of an items list in order.
// Records that do not have that exact shape are skipped, as are points that
// are not quoted strings.
func ParseItems(list string) []Item {
	matches := itemPattern.FindAllStringSubmatch(list, -1)
	items := make([]Item, 0, len(matches))
	for _, m := range matches {
		quoted := quotedPattern.FindAllStringSubmatch(m[2], -1)
		points := make([]string, 0, len(quoted))
		for _, q := range quoted {
			points = append(points, q[1])
		}
		items = append(items, Item{Label: m[1], Points: points})
	}
	return items
}

// Section converts the item to its sections= form
func (i Item) Section() Section {
	return Section{
		Label: i.Label,
		Body:  FormatBody(i.Points),
		Tone:  ClassifyTone(i.Label),
	}
}

// FormatBody renders points as a "- " bulleted list, one point per line.
// No points gives an empty body rather than a lone bullet.
func FormatBody(points []string) string {
	if len(points) == 0 {
		return ""
	}
	lines := make([]string, len(points))
	for i, p := range points {
		lines[i] = "- " + p
	}
	return strings.Join(lines, "\n")
}

// 📝 Render returns the section as an object literal with newlines in the body escaped
func (s Section) Render() string {
	var b strings.Builder
	b.WriteString(`{label: "`)
	b.WriteString(s.Label)
	b.WriteString(`", body: "`)
	b.WriteString(strings.ReplaceAll(s.Body, "\n", `\n`))
	b.WriteString(`", tone: "`)
	b.WriteString(s.Tone.String())
	b.WriteString(`"}`)
	return b.String()
}

func renderOccurrence(occ occurrence, sections []Section) string {
	var b strings.Builder
	b.WriteString("<" + TagName + " ")
	b.WriteString(occ.leading)
	b.WriteString("sections={")
	if len(sections) == 0 {
		b.WriteString("[]")
	} else {
		b.WriteString("[\n    ")
		for i, s := range sections {
			if i > 0 {
				b.WriteString(",\n    ")
			}
			b.WriteString(s.Render())
		}
		b.WriteString("\n  ]")
	}
	b.WriteString("}")
	b.WriteString(occ.trailing)
	b.WriteString("/>")
	return b.String()
}
