package domain

import "context"

// QuestionFilter carries the optional list predicates. Zero values
// mean "no filter"; all present filters are ANDed together.
type QuestionFilter struct {
	Section string // exact match on the section column
	Tag     string // case-insensitive substring of the raw tags column
	Search  string // case-insensitive substring of question, options or tags
}

// IsZero reports whether no filter is set.
func (f QuestionFilter) IsZero() bool {
	return f.Section == "" && f.Tag == "" && f.Search == ""
}

// SectionCount is the number of questions in one section, with the
// unclassified fallback already applied.
type SectionCount struct {
	Section string
	Count   int
}

// QuestionRepository is the persistence port for the question bank.
type QuestionRepository interface {
	// Insert stores a new question and returns its assigned id.
	Insert(ctx context.Context, q *Question) (int64, error)
	// Update rewrites an existing question in place. It returns a
	// not-found DomainError when the id is unknown.
	Update(ctx context.Context, q *Question) error
	// Delete removes a question by id. Deleting an unknown id is a
	// silent no-op.
	Delete(ctx context.Context, id int64) error
	// GetByID returns the question or (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*Question, error)
	// List returns filtered questions ordered by ascending id.
	List(ctx context.Context, filter QuestionFilter) ([]*Question, error)
	// ListByIDs returns only the questions whose ids exist; unknown
	// ids are simply missing from the result.
	ListByIDs(ctx context.Context, ids []int64) ([]*Question, error)
	// AllTagStrings returns the raw tags column of every question,
	// optionally scoped to one section.
	AllTagStrings(ctx context.Context, section string) ([]string, error)
	// DistinctSections returns the distinct non-null section values.
	DistinctSections(ctx context.Context) ([]string, error)
	// SectionCounts groups questions per section; blank and NULL
	// sections count under the unclassified sentinel.
	SectionCounts(ctx context.Context) ([]SectionCount, error)
}
