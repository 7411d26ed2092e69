package service

import (
	"regexp"
	"strings"
)

// documentData holds the structured information derived from extracted text.
type documentData struct {
	DocumentType string
	Fields       map[string]string
	Entities     []string
}

var (
	emailRe   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	urlRe     = regexp.MustCompile(`https?://[^\s]+|www\.[^\s]+`)
	addressRe = regexp.MustCompile(`(?i)\d+\s+[A-Za-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd)`)
	nameRe    = regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?$`)

	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`),                          // US format
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),                              // (123) 456-7890
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3,4}[-.\s]?\d{3,4}[-.\s]?\d{3,4}`),        // International
	}

	businessWords = []string{"company", "corp", "inc", "llc", "ltd", "organization", "group"}
)

// parseDocumentText derives a document type, structured fields and entity
// mentions from raw extracted text.
func parseDocumentText(text string) documentData {
	data := documentData{
		DocumentType: "unknown",
		Fields:       map[string]string{},
		Entities:     []string{},
	}
	if text == "" {
		return data
	}

	data.DocumentType = classifyDocument(text)

	seen := map[string]bool{}
	addEntity := func(values ...string) {
		for _, v := range values {
			v = strings.TrimSpace(v)
			if v != "" && !seen[v] {
				seen[v] = true
				data.Entities = append(data.Entities, v)
			}
		}
	}

	if emails := emailRe.FindAllString(text, -1); len(emails) > 0 {
		data.Fields["email"] = emails[0]
		addEntity(emails...)
	}

	for _, re := range phoneRes {
		if phones := re.FindAllString(text, -1); len(phones) > 0 {
			data.Fields["phone"] = phones[0]
			addEntity(phones...)
			break
		}
	}

	if urls := urlRe.FindAllString(text, -1); len(urls) > 0 {
		data.Fields["website"] = urls[0]
		addEntity(urls...)
	}

	if addresses := addressRe.FindAllString(text, -1); len(addresses) > 0 {
		data.Fields["address"] = addresses[0]
		addEntity(addresses...)
	}

	lines := strings.Split(text, "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if nameRe.MatchString(line) {
			if _, ok := data.Fields["name"]; !ok {
				data.Fields["name"] = line
			}
			addEntity(line)
		}
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		if containsAny(lower, businessWords) {
			data.Fields["company"] = strings.TrimSpace(line)
			addEntity(strings.TrimSpace(line))
			break
		}
	}

	return data
}

// classifyDocument guesses the document type from keywords in the text.
func classifyDocument(text string) string {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, []string{"business card", "card", "contact"}):
		return "business_card"
	case containsAny(lower, []string{"invoice", "bill", "receipt"}):
		return "invoice"
	case containsAny(lower, []string{"form", "application"}):
		return "form"
	case containsAny(lower, []string{"license", "id", "passport"}):
		return "identification"
	default:
		return "document"
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
