package services

import (
	"regexp"
	"strings"
)

// Atomic field extraction shared by the CV and JD parsers. All helpers
// return "" when nothing matches; they never fail.

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`(?:\+?\d{1,3}[\s.\-]?)?(?:\(\d{2,4}\)[\s.\-]?)?\d{3}[\s.\-]?\d{3,4}[\s.\-]?\d{0,4}`)
	linkedInRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9\-_%]+`)
	gitHubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9\-_.]+`)
	yearRe     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	yearsExpRe = regexp.MustCompile(`(\d+)\s*\+?\s*years?`)
	salaryRe   = regexp.MustCompile(`\$\s?[\d,]+(?:k|K)?(?:\s*[-–]\s*\$?\s?[\d,]+(?:k|K)?)?`)
	gpaRe      = regexp.MustCompile(`(?i)gpa\s*:?\s*([0-4](?:\.\d{1,2})?)`)
)

func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

func ExtractPhone(text string) string {
	// Drop email-ish lines first so digits in addresses do not match.
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "@") {
			continue
		}
		match := phoneRe.FindString(line)
		// A real phone number has at least 7 digits.
		if countDigits(match) >= 7 {
			return strings.TrimSpace(match)
		}
	}
	return ""
}

func ExtractLinkedIn(text string) string {
	return linkedInRe.FindString(text)
}

func ExtractGitHub(text string) string {
	return gitHubRe.FindString(text)
}

// ExtractYears returns every 4-digit year found, in order of appearance.
func ExtractYears(text string) []string {
	return yearRe.FindAllString(text, -1)
}

// ExtractYearsOfExperience pulls the first "N years" figure out of a
// requirement line, 0 if none is present.
func ExtractYearsOfExperience(text string) int {
	matches := yearsExpRe.FindStringSubmatch(text)
	if len(matches) < 2 {
		return 0
	}
	years := 0
	for _, ch := range matches[1] {
		years = years*10 + int(ch-'0')
	}
	return years
}

func ExtractSalary(text string) string {
	return strings.TrimSpace(salaryRe.FindString(text))
}

func ExtractGPA(text string) string {
	matches := gpaRe.FindStringSubmatch(text)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}

func countDigits(s string) int {
	n := 0
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			n++
		}
	}
	return n
}
