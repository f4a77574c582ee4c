package services

import (
	"strconv"
	"strings"
)

// ParsedQuestion is one question lifted out of a document's text.
type ParsedQuestion struct {
	Number        int
	Text          string
	Options       map[string]string
	CorrectOption string
}

const (
	optionsAnchor = "Options"
	answerAnchor  = "The correct answer is "
)

// ParseQuestions scans extracted document text for questions written as
//
//	Question <N>
//	<question text>
//	Options
//	A) ... B) ... C) ... D) ...
//	The correct answer is <label>.
//
// and returns one record per complete instance, in document order. Blocks
// missing the Options heading or the answer sentence are dropped, and text
// with no instances at all yields an empty result; neither case is an error.
// Within a block, a repeated option label overwrites the earlier text.
func ParseQuestions(text string) []ParsedQuestion {
	var questions []ParsedQuestion
	for _, block := range splitQuestionBlocks(text) {
		q, ok := parseQuestionBlock(block)
		if ok {
			questions = append(questions, q)
		}
	}
	return questions
}

type questionBlock struct {
	number int
	lines  []string
}

// splitQuestionBlocks segments the text on "Question <N>" lines. Everything
// up to the first anchor is discarded; each block runs to the next anchor or
// the end of the text.
func splitQuestionBlocks(text string) []questionBlock {
	var blocks []questionBlock
	current := -1
	for _, line := range strings.Split(text, "\n") {
		if n, ok := questionNumber(line); ok {
			blocks = append(blocks, questionBlock{number: n})
			current = len(blocks) - 1
			continue
		}
		if current >= 0 {
			blocks[current].lines = append(blocks[current].lines, line)
		}
	}
	return blocks
}

func questionNumber(line string) (int, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Question ")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseQuestionBlock(block questionBlock) (ParsedQuestion, bool) {
	optionsAt := -1
	for i, line := range block.lines {
		if strings.TrimSpace(line) == optionsAnchor {
			optionsAt = i
			break
		}
	}
	if optionsAt < 0 {
		return ParsedQuestion{}, false
	}

	body := strings.TrimSpace(strings.Join(block.lines[:optionsAt], "\n"))
	rest := strings.Join(block.lines[optionsAt+1:], "\n")

	answerAt := strings.Index(rest, answerAnchor)
	if answerAt < 0 {
		return ParsedQuestion{}, false
	}
	label := answerLabel(rest[answerAt+len(answerAnchor):])
	if label == "" {
		return ParsedQuestion{}, false
	}

	return ParsedQuestion{
		Number:        block.number,
		Text:          body,
		Options:       parseOptionLines(rest[:answerAt]),
		CorrectOption: label,
	}, true
}

// answerLabel captures the word following the answer anchor, which must be
// closed by a period.
func answerLabel(s string) string {
	end := 0
	for end < len(s) && isWordChar(s[end]) {
		end++
	}
	if end == 0 || end >= len(s) || s[end] != '.' {
		return ""
	}
	return s[:end]
}

// parseOptionLines extracts every "<label>) text" occurrence from the options
// section. A label is a single letter A through D at the start of the section,
// a line, or after whitespace; the option text runs to the next label.
func parseOptionLines(section string) map[string]string {
	type token struct {
		at    int
		label byte
	}
	var tokens []token
	for i := 0; i+1 < len(section); i++ {
		c := section[i]
		if c < 'A' || c > 'D' || section[i+1] != ')' {
			continue
		}
		if i > 0 && !isSpace(section[i-1]) {
			continue
		}
		tokens = append(tokens, token{at: i, label: c})
	}

	options := make(map[string]string, len(tokens))
	for k, t := range tokens {
		end := len(section)
		if k+1 < len(tokens) {
			end = tokens[k+1].at
		}
		options[string(t.label)] = strings.TrimSpace(section[t.at+2 : end])
	}
	return options
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
