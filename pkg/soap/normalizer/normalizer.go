package normalizer

import (
	"regexp"
	"strings"
)

// CanonicalHeaders lists the section headers the generator is prompted to emit,
// in document order. The normalizer rewrites every casing variant to these forms
// so downstream splitting only has to look for one spelling.
var CanonicalHeaders = []string{
	"SESSION SUMMARY:",
	"PATIENT INFORMATION:",
	"OBJECTIVE:",
	"ASSESSMENT:",
	"PLAN:",
}

var headerVariants = map[string]string{
	"Session Summary:":     "SESSION SUMMARY:",
	"Patient Information:": "PATIENT INFORMATION:",
	"Objective:":           "OBJECTIVE:",
	"Assessment:":          "ASSESSMENT:",
	"Plan:":                "PLAN:",
}

// followUpBlockRe matches a "Follow-up Question(s):" block up to the next blank
// line, next section header, or end of text. Follow-up questions are synthesized
// by the analyzer, so a block emitted by the generator must not leak into the
// displayed note.
var followUpBlockRe = regexp.MustCompile(`(?s)\n[ \t]*Follow-?[Uu]p Questions?:[ \t]*\n?.*?(\n\n|\n[A-Z][A-Z ]+:|$)`)

// Normalize cleans one raw generator response: emphasis markup removed, section
// headers canonicalized, stray header tokens inside section content stripped,
// follow-up question blocks removed. Idempotent: normalizing already-normalized
// text returns it unchanged.
func Normalize(raw string) string {
	text := stripEmphasis(raw)
	text = removeFollowUpBlocks(text)
	text = canonicalizeHeaders(text)
	text = stripInlineHeaders(text)
	return strings.TrimSpace(text)
}

func stripEmphasis(text string) string {
	// Double markers first so "**bold**" does not leave single stars behind.
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "*", "")
	return text
}

func removeFollowUpBlocks(text string) string {
	for {
		cleaned := followUpBlockRe.ReplaceAllString(text, "$1")
		if cleaned == text {
			return cleaned
		}
		text = cleaned
	}
}

// canonicalizeHeaders rewrites known mixed-case header spellings to the single
// uppercase form, but only where the header actually introduces a section: at
// the start of a line. A mixed-case variant mid-sentence ("the Plan: ...") is
// handled by stripInlineHeaders instead.
func canonicalizeHeaders(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for variant, canonical := range headerVariants {
			if strings.HasPrefix(trimmed, variant) {
				lines[i] = strings.Replace(line, variant, canonical, 1)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

// stripInlineHeaders removes canonical header tokens that appear mid-line. A
// token at line start (possibly after indentation) is a real section header and
// is kept; anywhere else it is generator noise that would mis-bound the section
// splitter on the next pass. Bare keywords without a trailing colon ("the plan
// is to...") are legitimate clinical text and are never touched.
func stripInlineHeaders(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for _, header := range CanonicalHeaders {
			idx := strings.Index(line, header)
			if idx < 0 {
				continue
			}
			if strings.HasPrefix(strings.TrimSpace(line), header) {
				// Real header. Any further occurrence on the same line is noise.
				head := line[:idx+len(header)]
				rest := strings.ReplaceAll(line[idx+len(header):], " "+header, "")
				line = head + strings.ReplaceAll(rest, header, "")
				continue
			}
			line = strings.ReplaceAll(line, " "+header, "")
			line = strings.ReplaceAll(line, header, "")
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
