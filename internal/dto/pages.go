// Package dto holds the view models handed to the HTML templates.
package dto

import "eju-quiz/internal/domain"

// QuestionView is one question prepared for rendering: tags parsed
// into a list and the unclassified section fallback applied.
type QuestionView struct {
	ID            int64
	Question      string
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectOption string
	Tags          []string
	Section       string
}

// FilterState echoes the submitted filters back into the controls.
type FilterState struct {
	Section string
	Tag     string
	Search  string
}

// QuizPageData backs the quiz listing page.
type QuizPageData struct {
	Questions  []QuestionView
	TagOptions []domain.TagOption
	Sections   []string
	Filter     FilterState
}

// AnswerDetail is the per-question breakdown of a graded submission.
type AnswerDetail struct {
	ID            int64
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}

// ResultPageData backs the scored result page.
type ResultPageData struct {
	Total   int
	Correct int
	Score   float64
	Details []AnswerDetail
}

// HomePageData backs the landing page.
type HomePageData struct {
	Sections []domain.SectionCount
	TopTags  []domain.TagCount
}

// AdminPageData backs the management listing, with the optional
// one-shot feedback banner.
type AdminPageData struct {
	Questions  []QuestionView
	TagOptions []domain.TagOption
	Sections   []string
	Filter     FilterState
	Msg        string
	Category   string
}

// QuestionForm carries the raw form fields of the add/edit pages, both
// outbound (prefill) and inbound (submission).
type QuestionForm struct {
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

// FormPageData backs the add/edit form page. Errors is non-empty only
// when a submission was rejected and the form is being redisplayed.
type FormPageData struct {
	Action   string // "add" or "edit"
	Form     QuestionForm
	Sections []string
	Errors   []string
}

// Input converts the submitted form into the domain input type.
func (f QuestionForm) Input() domain.QuestionInput {
	return domain.QuestionInput{
		Question:      f.Question,
		OptionA:       f.OptionA,
		OptionB:       f.OptionB,
		OptionC:       f.OptionC,
		OptionD:       f.OptionD,
		CorrectOption: f.CorrectOption,
		Tags:          f.Tags,
		Section:       f.Section,
	}
}

// NewQuestionView builds the render model for one question.
func NewQuestionView(q *domain.Question) QuestionView {
	return QuestionView{
		ID:            q.ID,
		Question:      q.Question,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectOption: q.CorrectOption,
		Tags:          q.TagList(),
		Section:       q.DisplaySection(),
	}
}

// NewQuestionViews maps a question list into render models.
func NewQuestionViews(questions []*domain.Question) []QuestionView {
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, NewQuestionView(q))
	}
	return views
}

// NewQuestionForm prefills the edit form from a stored question.
func NewQuestionForm(q *domain.Question) QuestionForm {
	return QuestionForm{
		ID:            q.ID,
		Question:      q.Question,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectOption: q.CorrectOption,
		Tags:          q.Tags,
		Section:       q.Section,
	}
}
