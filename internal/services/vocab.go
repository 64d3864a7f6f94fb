package services

import "strings"

// Fixed technology vocabulary used for skill recognition. Substring
// matching against this list produces false negatives for anything
// outside it and false positives for short unrelated tokens; that is
// the documented trade-off of the heuristic, not a bug.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Go", "Rust",
	"C++", "C#", "Ruby", "PHP", "Swift", "Kotlin",
	"React", "Angular", "Vue", "Node.js", "Express", "Django",
	"Flask", "Spring", "Rails", "HTML", "CSS", "SQL",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Docker", "Kubernetes",
	"AWS", "Azure", "GCP", "GraphQL", "Git",
}

// vocabularyHits returns every vocabulary entry present in text as a
// case-insensitive substring, in vocabulary order.
func vocabularyHits(text string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			hits = append(hits, skill)
		}
	}
	return hits
}

// skillSet deduplicates skills case-insensitively, keeping the first
// seen casing. Order carries no meaning; the result is a set.
type skillSet struct {
	seen  map[string]bool
	items []string
}

func newSkillSet() *skillSet {
	return &skillSet{seen: map[string]bool{}}
}

func (s *skillSet) add(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	key := strings.ToLower(skill)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.items = append(s.items, skill)
}

func (s *skillSet) values() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}
