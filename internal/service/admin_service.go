package service

import (
	"context"

	"eju-quiz/internal/domain"
	"eju-quiz/internal/dto"
	"eju-quiz/internal/logger"

	"go.uber.org/zap"
)

// AdminService drives the management pages: filtered listing and the
// validated create/update/delete operations on the question bank.
type AdminService interface {
	List(ctx context.Context, filter domain.QuestionFilter, msg, category string) (*dto.AdminPageData, error)
	// SectionChoices returns the section options for the add/edit forms.
	SectionChoices(ctx context.Context) ([]string, error)
	// Create validates and stores a new question. A ValidationErrors
	// error means nothing was written and the form should be
	// redisplayed.
	Create(ctx context.Context, input domain.QuestionInput) (int64, error)
	// Update validates and rewrites an existing question. It returns
	// ValidationErrors on bad input and a not-found DomainError for an
	// unknown id.
	Update(ctx context.Context, id int64, input domain.QuestionInput) error
	// Delete hard-deletes by id. Unknown ids are a silent no-op.
	Delete(ctx context.Context, id int64) error
	// GetForEdit loads the prefill data for the edit form, or a
	// not-found DomainError.
	GetForEdit(ctx context.Context, id int64) (*dto.QuestionForm, error)
}

type adminService struct {
	repo domain.QuestionRepository
}

// NewAdminService creates a new AdminService instance
func NewAdminService(repo domain.QuestionRepository) AdminService {
	return &adminService{repo: repo}
}

func (s *adminService) List(ctx context.Context, filter domain.QuestionFilter, msg, category string) (*dto.AdminPageData, error) {
	questions, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	rawTags, err := s.repo.AllTagStrings(ctx, filter.Section)
	if err != nil {
		return nil, err
	}
	storedSections, err := s.repo.DistinctSections(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminPageData{
		Questions:  dto.NewQuestionViews(questions),
		TagOptions: domain.TagOptions(rawTags),
		Sections:   domain.SectionChoices(storedSections),
		Filter: dto.FilterState{
			Section: filter.Section,
			Tag:     filter.Tag,
			Search:  filter.Search,
		},
		Msg:      msg,
		Category: category,
	}, nil
}

func (s *adminService) SectionChoices(ctx context.Context) ([]string, error) {
	storedSections, err := s.repo.DistinctSections(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SectionChoices(storedSections), nil
}

func (s *adminService) Create(ctx context.Context, input domain.QuestionInput) (int64, error) {
	if errs := input.Validate(); len(errs) > 0 {
		return 0, errs
	}

	id, err := s.repo.Insert(ctx, input.ToQuestion())
	if err != nil {
		return 0, err
	}
	logger.Get().Info("question created", zap.Int64("id", id))
	return id, nil
}

func (s *adminService) Update(ctx context.Context, id int64, input domain.QuestionInput) error {
	if errs := input.Validate(); len(errs) > 0 {
		return errs
	}

	q := input.ToQuestion()
	q.ID = id
	if err := s.repo.Update(ctx, q); err != nil {
		return err
	}
	logger.Get().Info("question updated", zap.Int64("id", id))
	return nil
}

func (s *adminService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Get().Info("question deleted", zap.Int64("id", id))
	return nil
}

func (s *adminService) GetForEdit(ctx context.Context, id int64) (*dto.QuestionForm, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}
	form := dto.NewQuestionForm(q)
	return &form, nil
}
