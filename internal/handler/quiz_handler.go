package handler

import (
	"eju-quiz/internal/domain"
	"eju-quiz/internal/logger"
	"eju-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles the visitor-facing pages
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{service: service}
}

// Home handles GET / and renders the landing page with section counts
// and the most common tags.
func (h *QuizHandler) Home(c *fiber.Ctx) error {
	data, err := h.service.Home(c.Context())
	if err != nil {
		logger.Get().Error("Failed to build home page", zap.Error(err))
		return err
	}
	return c.Render("index", data)
}

// ShowQuiz handles GET /quiz with the optional section, tag and search
// filters.
func (h *QuizHandler) ShowQuiz(c *fiber.Ctx) error {
	filter := filterFromQuery(c)

	data, err := h.service.ListQuestions(c.Context(), filter)
	if err != nil {
		logger.Get().Error("Failed to list quiz questions",
			zap.Error(err),
			zap.String("section", filter.Section),
			zap.String("tag", filter.Tag),
		)
		return err
	}
	return c.Render("quiz", data)
}

// SubmitQuiz handles POST /quiz. The body carries one
// "question-<id>=<letter>" pair per answered question; an empty
// submission redirects back to the quiz instead of grading.
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	answers := make(map[int64]string)
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		if id, ok := service.ParseAnswerKey(string(key)); ok && len(value) > 0 {
			answers[id] = string(value)
		}
	})

	if len(answers) == 0 {
		return c.Redirect("/quiz", fiber.StatusSeeOther)
	}

	result, err := h.service.Grade(c.Context(), answers)
	if err != nil {
		logger.Get().Error("Failed to grade submission",
			zap.Error(err),
			zap.Int("answer_count", len(answers)),
		)
		return err
	}
	return c.Render("result", result)
}

func filterFromQuery(c *fiber.Ctx) domain.QuestionFilter {
	return domain.QuestionFilter{
		Section: c.Query("section"),
		Tag:     c.Query("tag"),
		Search:  c.Query("search"),
	}
}
