package services

import "strings"

const (
	SubmissionTypePrayer  = "prayer"
	SubmissionTypeContact = "contact"
)

// prayerKeywords maps a language code to the substrings that mark a
// submission as a prayer request in that language. English keywords apply to
// every submission regardless of language; "pray" also covers "prayer" and
// "praying".
var prayerKeywords = map[string][]string{
	"en": {"pray"},
	"es": {"oración", "oracion", "orar", "ruego"},
	"fr": {"prière", "priere", "prier"},
	"de": {"gebet", "beten"},
	"pt": {"oração", "oracao", "orar"},
	"ro": {"rugăciune", "rugaciune", "roagă", "roaga"},
}

// ClassifySubmission decides whether a contact-form submission is really a
// prayer request. Pure keyword matching: case-insensitive, no side effects.
// Empty subject and message always classify as a contact submission.
func ClassifySubmission(subject string, message string, language string) string {
	subject = strings.ToLower(subject)
	message = strings.ToLower(message)

	keywords := append([]string(nil), prayerKeywords["en"]...)
	if language != "" && language != "en" {
		if localized, ok := prayerKeywords[language]; ok {
			keywords = append(keywords, localized...)
		}
	}

	for _, keyword := range keywords {
		if strings.Contains(subject, keyword) || strings.Contains(message, keyword) {
			return SubmissionTypePrayer
		}
	}
	return SubmissionTypeContact
}
