package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"eju-quiz/internal/domain"
	"eju-quiz/internal/repository/models"
	"eju-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, question, option_a, option_b, option_c, option_d, correct_option, tags, section`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// Insert implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Insert(ctx context.Context, q *domain.Question) (int64, error) {
	model := fromDomainQuestion(q)

	query := `INSERT INTO questions (
		question, option_a, option_b, option_c, option_d, correct_option, tags, section
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := a.db.ExecContext(ctx, query,
		model.Question,
		model.OptionA,
		model.OptionB,
		model.OptionC,
		model.OptionD,
		model.CorrectOption,
		model.Tags,
		model.Section,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted question id: %w", err)
	}
	q.ID = id
	return id, nil
}

// Update implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Update(ctx context.Context, q *domain.Question) error {
	model := fromDomainQuestion(q)

	query := `UPDATE questions SET
		question = ?,
		option_a = ?,
		option_b = ?,
		option_c = ?,
		option_d = ?,
		correct_option = ?,
		tags = ?,
		section = ?
	WHERE id = ?`

	res, err := a.db.ExecContext(ctx, query,
		model.Question,
		model.OptionA,
		model.OptionB,
		model.OptionC,
		model.OptionD,
		model.CorrectOption,
		model.Tags,
		model.Section,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update question %d: %w", q.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for question %d: %w", q.ID, err)
	}
	if affected == 0 {
		return domain.NewQuestionNotFoundError(q.ID)
	}
	return nil
}

// Delete implements domain.QuestionRepository. Deleting an id that
// does not exist is not an error.
func (a *QuestionDatabaseAdapter) Delete(ctx context.Context, id int64) error {
	if _, err := a.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

// GetByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	var model models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = ?`

	err := a.db.GetContext(ctx, &model, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %d: %w", id, err)
	}
	return toDomainQuestion(&model), nil
}

// List implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) List(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error) {
	where, args := buildFilterClause(filter)
	query := `SELECT ` + questionColumns + ` FROM questions` + where + ` ORDER BY id`

	var rows []models.Question
	if err := a.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// ListByIDs implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT `+questionColumns+` FROM questions WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build id list query: %w", err)
	}

	var rows []models.Question
	if err := a.db.SelectContext(ctx, &rows, a.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list questions by ids: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// AllTagStrings implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) AllTagStrings(ctx context.Context, section string) ([]string, error) {
	query := `SELECT tags FROM questions WHERE tags IS NOT NULL AND tags != ''`
	var args []interface{}
	if section != "" {
		query += ` AND section = ?`
		args = append(args, section)
	}

	var rows []string
	if err := a.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to collect tag strings: %w", err)
	}
	return rows, nil
}

// DistinctSections implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) DistinctSections(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT section FROM questions WHERE section IS NOT NULL AND section != '' ORDER BY section`

	var rows []string
	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list distinct sections: %w", err)
	}
	return rows, nil
}

// SectionCounts implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) SectionCounts(ctx context.Context) ([]domain.SectionCount, error) {
	query := `SELECT COALESCE(NULLIF(section, ''), ?) AS display_section, COUNT(*) AS count
	FROM questions GROUP BY COALESCE(NULLIF(section, ''), ?) ORDER BY display_section`

	var rows []struct {
		Section string `db:"display_section"`
		Count   int    `db:"count"`
	}
	if err := a.db.SelectContext(ctx, &rows, query, domain.SectionUnclassified, domain.SectionUnclassified); err != nil {
		return nil, fmt.Errorf("failed to count questions per section: %w", err)
	}

	counts := make([]domain.SectionCount, 0, len(rows))
	for _, r := range rows {
		counts = append(counts, domain.SectionCount{Section: r.Section, Count: r.Count})
	}
	return counts, nil
}

// buildFilterClause composes the WHERE conjunction for the optional
// list filters and the matching bound parameters. All comparisons on
// text go through LOWER so substring filters are case-insensitive.
func buildFilterClause(filter domain.QuestionFilter) (string, []interface{}) {
	var (
		predicates []string
		args       []interface{}
	)

	if filter.Section != "" {
		predicates = append(predicates, `section = ?`)
		args = append(args, filter.Section)
	}
	if filter.Tag != "" {
		predicates = append(predicates, `LOWER(tags) LIKE LOWER(?)`)
		args = append(args, "%"+filter.Tag+"%")
	}
	if filter.Search != "" {
		needle := "%" + filter.Search + "%"
		predicates = append(predicates,
			`(LOWER(question) LIKE LOWER(?)
			OR LOWER(option_a) LIKE LOWER(?)
			OR LOWER(option_b) LIKE LOWER(?)
			OR LOWER(option_c) LIKE LOWER(?)
			OR LOWER(option_d) LIKE LOWER(?)
			OR LOWER(tags) LIKE LOWER(?))`)
		for i := 0; i < 6; i++ {
			args = append(args, needle)
		}
	}

	if len(predicates) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(predicates, " AND "), args
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	return &domain.Question{
		ID:            m.ID,
		Question:      m.Question,
		OptionA:       m.OptionA,
		OptionB:       m.OptionB,
		OptionC:       m.OptionC,
		OptionD:       m.OptionD,
		CorrectOption: m.CorrectOption,
		Tags:          util.NullStringToString(m.Tags),
		Section:       util.NullStringToString(m.Section),
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	questions := make([]*domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions
}

func fromDomainQuestion(q *domain.Question) *models.Question {
	if q == nil {
		return nil
	}
	return &models.Question{
		ID:            q.ID,
		Question:      q.Question,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectOption: q.CorrectOption,
		Tags:          util.StringToNullString(q.Tags),
		Section:       util.StringToNullString(q.Section),
	}
}
