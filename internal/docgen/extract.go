package docgen

import (
	"regexp"
	"strings"
)

// Record is one documentation entry extracted from an annotated comment
// block. It lives only for the duration of one run.
type Record struct {
	Title       string
	Category    string
	Chapter     string
	Description string
}

var (
	// contractBlockRe matches a /** ... */ block whose closing marker is
	// followed only by whitespace before a contract or function keyword.
	contractBlockRe = regexp.MustCompile(`(?s)/\*\*(.*?)\*/\s*(contract|function)`)

	titleTagRe       = regexp.MustCompile(`@title\s+([^\n]+)`)
	categoryTagRe    = regexp.MustCompile(`@category\s+([^\n]+)`)
	chapterTagRe     = regexp.MustCompile(`@chapter\s+([^\n]+)`)
	noticeTagRe      = regexp.MustCompile(`@notice\s+([^\n]+)`)
	descriptionTagRe = regexp.MustCompile(`@description\s+([^\n]+)`)

	itTitleRe = regexp.MustCompile(`it\(\s*(?:"([^"]*)"|'([^']*)')`)
)

// tagValue returns the trimmed first capture of re in block, or fallback when
// the tag is absent or empty.
func tagValue(re *regexp.Regexp, block, fallback string) string {
	m := re.FindStringSubmatch(block)
	if m == nil {
		return fallback
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return fallback
	}
	return v
}

// ExtractFromContract scans Solidity source text for annotation blocks that
// immediately precede a contract or function declaration. A block without an
// @title tag yields no record; @category and @chapter fall back to "general"
// and @notice to the empty string.
func ExtractFromContract(text string) []Record {
	var records []Record
	for _, m := range contractBlockRe.FindAllStringSubmatch(text, -1) {
		body := m[1]
		title := tagValue(titleTagRe, body, "")
		if title == "" {
			continue
		}
		records = append(records, Record{
			Title:       title,
			Category:    tagValue(categoryTagRe, body, "general"),
			Chapter:     tagValue(chapterTagRe, body, "general"),
			Description: tagValue(noticeTagRe, body, ""),
		})
	}
	return records
}

// ExtractFromTest scans test source line by line. A line containing /** opens
// a block that accumulates through the line containing */; the block yields a
// record only when the very next line declares a test with a quoted title.
// Anything else silently discards the block, the same way a block the scan
// never associates with a declaration is dropped in contract sources.
func ExtractFromTest(text string) []Record {
	lines := strings.Split(text, "\n")
	var records []Record

	for i := 0; i < len(lines); i++ {
		if !strings.Contains(lines[i], "/**") {
			continue
		}

		var block strings.Builder
		j := i
		for ; j < len(lines); j++ {
			block.WriteString(lines[j])
			block.WriteByte('\n')
			if strings.Contains(lines[j], "*/") {
				break
			}
		}
		if j >= len(lines)-1 {
			break // unterminated block, or nothing follows it
		}

		if m := itTitleRe.FindStringSubmatch(lines[j+1]); m != nil {
			title := m[1]
			if title == "" {
				title = m[2]
			}
			body := block.String()
			records = append(records, Record{
				Title:       title,
				Category:    tagValue(categoryTagRe, body, "general"),
				Chapter:     tagValue(chapterTagRe, body, "general"),
				Description: tagValue(descriptionTagRe, body, ""),
			})
		}
		i = j
	}
	return records
}
