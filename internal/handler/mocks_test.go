package handler_test

import (
	"context"

	"eju-quiz/internal/domain"
	"eju-quiz/internal/dto"
)

// --- Manual Mocks ---

// MockQuizService
type MockQuizService struct {
	HomeFunc          func(ctx context.Context) (*dto.HomePageData, error)
	ListQuestionsFunc func(ctx context.Context, filter domain.QuestionFilter) (*dto.QuizPageData, error)
	GradeFunc         func(ctx context.Context, answers map[int64]string) (*dto.ResultPageData, error)
}

func (m *MockQuizService) Home(ctx context.Context) (*dto.HomePageData, error) {
	if m.HomeFunc != nil {
		return m.HomeFunc(ctx)
	}
	panic("MockQuizService.HomeFunc not implemented")
}

func (m *MockQuizService) ListQuestions(ctx context.Context, filter domain.QuestionFilter) (*dto.QuizPageData, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, filter)
	}
	panic("MockQuizService.ListQuestionsFunc not implemented")
}

func (m *MockQuizService) Grade(ctx context.Context, answers map[int64]string) (*dto.ResultPageData, error) {
	if m.GradeFunc != nil {
		return m.GradeFunc(ctx, answers)
	}
	panic("MockQuizService.GradeFunc not implemented")
}

// MockAdminService
type MockAdminService struct {
	ListFunc           func(ctx context.Context, filter domain.QuestionFilter, msg, category string) (*dto.AdminPageData, error)
	SectionChoicesFunc func(ctx context.Context) ([]string, error)
	CreateFunc         func(ctx context.Context, input domain.QuestionInput) (int64, error)
	UpdateFunc         func(ctx context.Context, id int64, input domain.QuestionInput) error
	DeleteFunc         func(ctx context.Context, id int64) error
	GetForEditFunc     func(ctx context.Context, id int64) (*dto.QuestionForm, error)
}

func (m *MockAdminService) List(ctx context.Context, filter domain.QuestionFilter, msg, category string) (*dto.AdminPageData, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, msg, category)
	}
	panic("MockAdminService.ListFunc not implemented")
}

func (m *MockAdminService) SectionChoices(ctx context.Context) ([]string, error) {
	if m.SectionChoicesFunc != nil {
		return m.SectionChoicesFunc(ctx)
	}
	return domain.SectionChoices(nil), nil
}

func (m *MockAdminService) Create(ctx context.Context, input domain.QuestionInput) (int64, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	panic("MockAdminService.CreateFunc not implemented")
}

func (m *MockAdminService) Update(ctx context.Context, id int64, input domain.QuestionInput) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, input)
	}
	panic("MockAdminService.UpdateFunc not implemented")
}

func (m *MockAdminService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	panic("MockAdminService.DeleteFunc not implemented")
}

func (m *MockAdminService) GetForEdit(ctx context.Context, id int64) (*dto.QuestionForm, error) {
	if m.GetForEditFunc != nil {
		return m.GetForEditFunc(ctx, id)
	}
	panic("MockAdminService.GetForEditFunc not implemented")
}
