package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrInsufficientStock is returned by stock-guarded writes when the
// requested quantity exceeds what is left.
var ErrInsufficientStock = errors.New("insufficient stock")

type GormRepo struct {
	DB *gorm.DB
}
