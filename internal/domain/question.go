package domain

import (
	"strings"
)

// SectionUnclassified is the display fallback for questions without a section.
const SectionUnclassified = "未分类"

// OptionLabels are the only accepted answer letters, in display order.
var OptionLabels = []string{"A", "B", "C", "D"}

// Question is the single persisted entity: a multiple-choice question
// with four options, a correct answer letter, optional comma-separated
// tag paths and an optional subject section.
type Question struct {
	ID            int64
	Question      string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectOption string
	Tags          string
	Section       string
}

// TagList parses the raw tags column into a clean list: split on
// comma, trim, drop blanks, collapse duplicates preserving first-seen
// order.
func (q *Question) TagList() []string {
	return NormalizeTagList(q.Tags)
}

// DisplaySection returns the section with the unclassified fallback applied.
func (q *Question) DisplaySection() string {
	if strings.TrimSpace(q.Section) == "" {
		return SectionUnclassified
	}
	return q.Section
}

// IsCorrect reports whether the submitted letter matches the stored
// answer. The comparison is exact: letters are uppercased at write
// time, not here.
func (q *Question) IsCorrect(answer string) bool {
	return answer == q.CorrectOption
}

// NormalizeTagList splits a raw tags field on commas, trims each entry,
// drops blanks and deduplicates while keeping first-seen order.
func NormalizeTagList(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}

// NormalizeTags rewrites a raw tags field into its canonical stored
// form: normalized entries rejoined with ", ".
func NormalizeTags(raw string) string {
	return strings.Join(NormalizeTagList(raw), ", ")
}

// QuestionInput carries the (trimmed) form fields of a create or
// update submission before validation.
type QuestionInput struct {
	Question      string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectOption string
	Tags          string
	Section       string
}

// Validate checks the admin form invariants: non-blank question and
// options, a correct option in A-D (case-insensitive) and a non-blank
// section. It returns nil when the input is acceptable.
func (in *QuestionInput) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(in.Question) == "" {
		errs = append(errs, ValidationError{Field: "question", Message: "题目内容不能为空"})
	}
	options := []struct {
		field string
		value string
	}{
		{"option_a", in.OptionA},
		{"option_b", in.OptionB},
		{"option_c", in.OptionC},
		{"option_d", in.OptionD},
	}
	for _, opt := range options {
		if strings.TrimSpace(opt.value) == "" {
			errs = append(errs, ValidationError{Field: opt.field, Message: "四个选项 (A-D) 均不能为空"})
			break
		}
	}
	if !isValidOption(strings.ToUpper(strings.TrimSpace(in.CorrectOption))) {
		errs = append(errs, ValidationError{Field: "correct_option", Message: "正确答案必须是 A、B、C、D 之一"})
	}
	if strings.TrimSpace(in.Section) == "" {
		errs = append(errs, ValidationError{Field: "section", Message: "请选择科目分类"})
	}

	return errs
}

// ToQuestion builds the normalized entity from validated input: fields
// trimmed, the answer letter uppercased, tags canonicalized.
func (in *QuestionInput) ToQuestion() *Question {
	return &Question{
		Question:      strings.TrimSpace(in.Question),
		OptionA:       strings.TrimSpace(in.OptionA),
		OptionB:       strings.TrimSpace(in.OptionB),
		OptionC:       strings.TrimSpace(in.OptionC),
		OptionD:       strings.TrimSpace(in.OptionD),
		CorrectOption: strings.ToUpper(strings.TrimSpace(in.CorrectOption)),
		Tags:          NormalizeTags(in.Tags),
		Section:       strings.TrimSpace(in.Section),
	}
}

func isValidOption(s string) bool {
	for _, l := range OptionLabels {
		if s == l {
			return true
		}
	}
	return false
}
