package render

import (
	"regexp"
	"strings"
)

// Header is the structured front matter of a paper summary, rendered with
// large typography above the two-column body.
type Header struct {
	Title        string
	Authors      []string
	Institutions []string
}

// Empty reports whether no header fields were found.
func (h Header) Empty() bool {
	return h.Title == "" && len(h.Authors) == 0 && len(h.Institutions) == 0
}

var (
	bulletRe   = regexp.MustCompile(`^\s*[-*•]\s+(.*?)\s*$`)
	numberedRe = regexp.MustCompile(`^\s*\d+\s*[.)]\s+`)
)

func stripBullet(line string) string {
	if m := bulletRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(line)
}

// isFieldLine reports whether line starts one of the recognized header
// fields. Only these exact prefixes (case-insensitive, after bullet
// stripping) delimit fields; a colon-bearing list item such as
// "- Affiliation: MIT" inside a block stays an ordinary item.
func isFieldLine(line, fieldName string) bool {
	s := strings.ToLower(stripBullet(line))
	return strings.HasPrefix(s, strings.ToLower(fieldName)+":")
}

func fieldValueAfterColon(line string) string {
	s := stripBullet(line)
	if _, after, found := strings.Cut(s, ":"); found {
		return strings.TrimSpace(after)
	}
	return ""
}

func isListItem(line string) bool {
	return bulletRe.MatchString(line) || numberedRe.MatchString(line)
}

// ExtractHeader separates the recognized front-matter fields (Paper Title,
// Author Information, Institutional Information) from the Markdown body.
// Each field takes an inline value, or opens a list block consumed until a
// blank line or the next recognized field. Everything else is returned as
// the remaining body, order preserved.
func ExtractHeader(markdown string) (Header, string) {
	lines := strings.Split(strings.TrimSpace(markdown), "\n")

	var h Header
	var remaining []string

	const (
		modeNone = iota
		modeAuthors
		modeInstitutions
	)
	mode := modeNone

	for _, raw := range lines {
		line := strings.TrimRight(raw, "\n")

		switch {
		case isFieldLine(line, "Paper Title"):
			h.Title = fieldValueAfterColon(line)
			mode = modeNone
			continue

		case isFieldLine(line, "Author Information"):
			if v := fieldValueAfterColon(line); v != "" {
				h.Authors = []string{v}
				mode = modeNone
			} else {
				h.Authors = nil
				mode = modeAuthors
			}
			continue

		case isFieldLine(line, "Institutional Information"):
			if v := fieldValueAfterColon(line); v != "" {
				h.Institutions = []string{v}
				mode = modeNone
			} else {
				h.Institutions = nil
				mode = modeInstitutions
			}
			continue
		}

		if mode != modeNone {
			if strings.TrimSpace(line) == "" {
				mode = modeNone
				continue
			}

			item := stripBullet(line)
			item = strings.TrimSpace(numberedRe.ReplaceAllString(item, ""))
			if item != "" {
				if mode == modeAuthors {
					h.Authors = append(h.Authors, item)
				} else {
					h.Institutions = append(h.Institutions, item)
				}
			}
			continue
		}

		remaining = append(remaining, raw)
	}

	h.Title = strings.TrimSpace(h.Title)
	return h, strings.TrimSpace(strings.Join(remaining, "\n"))
}
