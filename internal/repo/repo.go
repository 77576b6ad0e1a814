package repo

import (
	"errors"

	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

var (
	ErrUserAlreadyExists = errors.New("username already taken")
	ErrNotFound          = gorm.ErrRecordNotFound
)
