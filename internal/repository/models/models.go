package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a JSON-encoded string array in a single column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}

	return json.Unmarshal(bytesToParse, s)
}

// User represents a row of the users table.
type User struct {
	ID        int64          `db:"id"`
	Email     string         `db:"email"`
	Name      sql.NullString `db:"name"`
	GoogleID  string         `db:"google_id"`
	AvatarURL sql.NullString `db:"avatar_url"`
	CreatedAt time.Time      `db:"created_at"`
}

// Question represents a row of the questions table.
type Question struct {
	ID          int64          `db:"id"`
	Question    string         `db:"question"`
	Answers     StringSlice    `db:"answers"`
	Correct     int            `db:"correct"`
	Explanation sql.NullString `db:"explanation"`
	Category    sql.NullString `db:"category"`
	Source      sql.NullString `db:"source"`
	UserID      sql.NullInt64  `db:"user_id"`
	CreatedAt   time.Time      `db:"created_at"`
}
