package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint classification is structural: the postgres driver translates
// SQLSTATE codes into GORM's sentinel errors (TranslateError is enabled on
// the handle), so no driver message text is ever inspected.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
