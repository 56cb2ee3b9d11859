package storage

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// IsUniqueViolation reports whether err was raised by a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgerrcode.UniqueViolation
	}

	switch code, msg, ok := sqliteConstraint(err); {
	case !ok:
		return false
	case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	default:
		return strings.Contains(msg, "UNIQUE constraint failed")
	}
}

// IsForeignKeyViolation reports whether err was raised by a FOREIGN KEY constraint.
// SQLite reports ON DELETE RESTRICT as SQLITE_CONSTRAINT_TRIGGER, so the
// message decides for any constraint code other than the FK one.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgerrcode.ForeignKeyViolation
	}

	switch code, msg, ok := sqliteConstraint(err); {
	case !ok:
		return false
	case code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return true
	default:
		return strings.Contains(msg, "FOREIGN KEY constraint failed")
	}
}

// sqliteConstraint unwraps a SQLite error whose primary result code is
// SQLITE_CONSTRAINT and returns its extended code and message.
func sqliteConstraint(err error) (int, string, bool) {
	var liteErr *sqlite.Error
	if !errors.As(err, &liteErr) {
		return 0, "", false
	}
	if liteErr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return 0, "", false
	}
	return liteErr.Code(), liteErr.Error(), true
}
