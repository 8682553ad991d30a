package service

import (
	"context"
	"sort"
	"strconv"

	"eju-quiz/internal/domain"
	"eju-quiz/internal/dto"
	"eju-quiz/internal/util"
)

// topTagCount caps the landing page tag cloud.
const topTagCount = 10

// QuizService drives the visitor-facing pages: the landing overview,
// the filtered question list and submission grading.
type QuizService interface {
	Home(ctx context.Context) (*dto.HomePageData, error)
	ListQuestions(ctx context.Context, filter domain.QuestionFilter) (*dto.QuizPageData, error)
	Grade(ctx context.Context, answers map[int64]string) (*dto.ResultPageData, error)
}

type quizService struct {
	repo domain.QuestionRepository
}

// NewQuizService creates a new QuizService instance
func NewQuizService(repo domain.QuestionRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) Home(ctx context.Context) (*dto.HomePageData, error) {
	counts, err := s.repo.SectionCounts(ctx)
	if err != nil {
		return nil, err
	}
	rawTags, err := s.repo.AllTagStrings(ctx, "")
	if err != nil {
		return nil, err
	}

	// Sections render in registry order; sections with no questions
	// still appear with a zero count.
	byName := make(map[string]int, len(counts))
	stored := make([]string, 0, len(counts))
	for _, c := range counts {
		byName[c.Section] = c.Count
		stored = append(stored, c.Section)
	}
	sections := make([]domain.SectionCount, 0, len(byName))
	for _, name := range domain.SectionChoices(stored) {
		sections = append(sections, domain.SectionCount{Section: name, Count: byName[name]})
	}

	return &dto.HomePageData{
		Sections: sections,
		TopTags:  domain.TopTags(rawTags, topTagCount),
	}, nil
}

func (s *quizService) ListQuestions(ctx context.Context, filter domain.QuestionFilter) (*dto.QuizPageData, error) {
	questions, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	tagOptions, sections, err := s.filterControls(ctx, filter.Section)
	if err != nil {
		return nil, err
	}

	return &dto.QuizPageData{
		Questions:  dto.NewQuestionViews(questions),
		TagOptions: tagOptions,
		Sections:   sections,
		Filter: dto.FilterState{
			Section: filter.Section,
			Tag:     filter.Tag,
			Search:  filter.Search,
		},
	}, nil
}

func (s *quizService) Grade(ctx context.Context, answers map[int64]string) (*dto.ResultPageData, error) {
	ids := make([]int64, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// Only located questions count; a submitted id that no longer
	// exists is dropped from scoring.
	questions, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	correct := 0
	details := make([]dto.AnswerDetail, 0, len(questions))
	for _, q := range questions {
		userAnswer := answers[q.ID]
		isCorrect := q.IsCorrect(userAnswer)
		if isCorrect {
			correct++
		}
		details = append(details, dto.AnswerDetail{
			ID:            q.ID,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectOption,
			IsCorrect:     isCorrect,
		})
	}

	total := len(questions)
	return &dto.ResultPageData{
		Total:   total,
		Correct: correct,
		Score:   util.ScorePercent(correct, total),
		Details: details,
	}, nil
}

// filterControls loads the data behind the filter UI: the tag tree
// (scoped to the selected section) and the section choices.
func (s *quizService) filterControls(ctx context.Context, section string) ([]domain.TagOption, []string, error) {
	rawTags, err := s.repo.AllTagStrings(ctx, section)
	if err != nil {
		return nil, nil, err
	}
	storedSections, err := s.repo.DistinctSections(ctx)
	if err != nil {
		return nil, nil, err
	}
	return domain.TagOptions(rawTags), domain.SectionChoices(storedSections), nil
}

// ParseAnswerKey extracts the question id from a submitted form field
// named "question-<id>". The second return is false for any other key.
func ParseAnswerKey(key string) (int64, bool) {
	const prefix = "question-"
	if len(key) <= len(prefix) || key[:len(prefix)] != prefix {
		return 0, false
	}
	id, err := strconv.ParseInt(key[len(prefix):], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
