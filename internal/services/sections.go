package services

import (
	"regexp"
	"strings"
)

// The parsers segment documents by scanning a line stream against an
// ordered list of heading rules. A line opens a section when it is a
// bare heading alias ("Skills", "SKILLS:") or an alias followed by
// inline content ("Skills: React, Go"). The rule order is the priority
// order: the first rule whose alias matches a line wins that line.

type sectionRule struct {
	name     string
	patterns []*regexp.Regexp
}

func newSectionRule(name string, aliases ...string) sectionRule {
	patterns := make([]*regexp.Regexp, 0, len(aliases))
	for _, alias := range aliases {
		patterns = append(patterns, regexp.MustCompile(`(?i)^\s*`+alias+`\s*(?::\s*(.*))?$`))
	}
	return sectionRule{name: name, patterns: patterns}
}

// match reports whether line is a heading for this rule and returns
// any inline content that followed the colon.
func (r sectionRule) match(line string) (string, bool) {
	for _, p := range r.patterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// splitSections walks the lines once and buckets them under the last
// seen heading. Lines before any heading land in the header bucket "".
func splitSections(text string, rules []sectionRule) map[string][]string {
	sections := map[string][]string{}
	current := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(strings.TrimSuffix(raw, "\r"), " \t")

		matched := false
		for _, rule := range rules {
			if inline, ok := rule.match(strings.TrimSpace(line)); ok {
				current = rule.name
				if inline != "" {
					sections[current] = append(sections[current], inline)
				}
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		sections[current] = append(sections[current], line)
	}

	return sections
}

// sectionText joins a section's lines, dropping leading and trailing
// blanks but keeping interior blank lines for entry splitting.
func sectionText(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

var entryStartRe = regexp.MustCompile(`^[A-Z].*\b(19|20)\d{2}\b`)

// splitEntries cuts a section into entries. The delimiter is weak on
// purpose: a blank line, or a line starting with a capital letter and
// containing a 4-digit year, opens a new entry.
func splitEntries(text string) [][]string {
	var entries [][]string
	var current []string

	flush := func() {
		if len(current) > 0 {
			entries = append(entries, current)
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if entryStartRe.MatchString(trimmed) && len(current) > 0 {
			flush()
		}
		current = append(current, trimmed)
	}
	flush()

	return entries
}

var bulletRe = regexp.MustCompile(`^[\s]*[-•*·▪‣]\s*`)

// splitItems breaks a section into list items: one per bullet or line,
// falling back to comma separation for single-line sections.
func splitItems(text string) []string {
	var items []string
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		line = strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		items = append(items, line)
	}

	if len(items) == 1 && strings.Contains(items[0], ",") {
		parts := strings.Split(items[0], ",")
		items = items[:0]
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
	}

	return items
}
