package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSchemaCreatesTable(t *testing.T) {
	db, err := NewSQLiteDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, InitSchema(ctx, db))

	_, err = db.ExecContext(ctx, `INSERT INTO questions
		(question, option_a, option_b, option_c, option_d, correct_option, tags, section)
		VALUES ('q', 'a', 'b', 'c', 'd', 'A', NULL, NULL)`)
	assert.NoError(t, err)
}

func TestInitSchemaAddsSectionColumn(t *testing.T) {
	db, err := NewSQLiteDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	// An old-layout table without the section column, with data.
	_, err = db.ExecContext(ctx, `CREATE TABLE questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question TEXT NOT NULL,
		option_a TEXT NOT NULL,
		option_b TEXT NOT NULL,
		option_c TEXT NOT NULL,
		option_d TEXT NOT NULL,
		correct_option TEXT NOT NULL,
		tags TEXT
	)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO questions
		(question, option_a, option_b, option_c, option_d, correct_option, tags)
		VALUES ('q', 'a', 'b', 'c', 'd', 'A', '日语')`)
	require.NoError(t, err)

	require.NoError(t, InitSchema(ctx, db))

	// The column exists and the old row survived with a NULL section.
	var section interface{}
	err = db.QueryRowContext(ctx, `SELECT section FROM questions WHERE question = 'q'`).Scan(&section)
	assert.NoError(t, err)
	assert.Nil(t, section)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM questions`))
	assert.Equal(t, 1, count)
}

func TestInitSchemaIdempotent(t *testing.T) {
	db, err := NewSQLiteDB(":memory:")
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, InitSchema(ctx, db))
	require.NoError(t, InitSchema(ctx, db))
	require.NoError(t, InitSchema(ctx, db))
}
