package models

import "database/sql"

// Question mirrors one row of the questions table. The tags and
// section columns are nullable; everything else is NOT NULL.
type Question struct {
	ID            int64          `db:"id"`
	Question      string         `db:"question"`
	OptionA       string         `db:"option_a"`
	OptionB       string         `db:"option_b"`
	OptionC       string         `db:"option_c"`
	OptionD       string         `db:"option_d"`
	CorrectOption string         `db:"correct_option"`
	Tags          sql.NullString `db:"tags"`
	Section       sql.NullString `db:"section"`
}
