package service

import (
	"context"

	"eju-quiz/internal/domain"
)

// MockQuestionRepository is a function-field mock of
// domain.QuestionRepository.
type MockQuestionRepository struct {
	InsertFunc           func(ctx context.Context, q *domain.Question) (int64, error)
	UpdateFunc           func(ctx context.Context, q *domain.Question) error
	DeleteFunc           func(ctx context.Context, id int64) error
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.Question, error)
	ListFunc             func(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error)
	ListByIDsFunc        func(ctx context.Context, ids []int64) ([]*domain.Question, error)
	AllTagStringsFunc    func(ctx context.Context, section string) ([]string, error)
	DistinctSectionsFunc func(ctx context.Context) ([]string, error)
	SectionCountsFunc    func(ctx context.Context) ([]domain.SectionCount, error)
}

func (m *MockQuestionRepository) Insert(ctx context.Context, q *domain.Question) (int64, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, q)
	}
	panic("MockQuestionRepository.InsertFunc not implemented")
}

func (m *MockQuestionRepository) Update(ctx context.Context, q *domain.Question) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, q)
	}
	panic("MockQuestionRepository.UpdateFunc not implemented")
}

func (m *MockQuestionRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	panic("MockQuestionRepository.DeleteFunc not implemented")
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	panic("MockQuestionRepository.GetByIDFunc not implemented")
}

func (m *MockQuestionRepository) List(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	panic("MockQuestionRepository.ListFunc not implemented")
}

func (m *MockQuestionRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Question, error) {
	if m.ListByIDsFunc != nil {
		return m.ListByIDsFunc(ctx, ids)
	}
	panic("MockQuestionRepository.ListByIDsFunc not implemented")
}

func (m *MockQuestionRepository) AllTagStrings(ctx context.Context, section string) ([]string, error) {
	if m.AllTagStringsFunc != nil {
		return m.AllTagStringsFunc(ctx, section)
	}
	panic("MockQuestionRepository.AllTagStringsFunc not implemented")
}

func (m *MockQuestionRepository) DistinctSections(ctx context.Context) ([]string, error) {
	if m.DistinctSectionsFunc != nil {
		return m.DistinctSectionsFunc(ctx)
	}
	panic("MockQuestionRepository.DistinctSectionsFunc not implemented")
}

func (m *MockQuestionRepository) SectionCounts(ctx context.Context) ([]domain.SectionCount, error) {
	if m.SectionCountsFunc != nil {
		return m.SectionCountsFunc(ctx)
	}
	panic("MockQuestionRepository.SectionCountsFunc not implemented")
}
