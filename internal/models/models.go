package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
}

type Product struct {
	PID         uint      `gorm:"column:pid;primaryKey;autoIncrement" json:"id"`
	PName       string    `gorm:"column:pname;not null"               json:"name"`
	Description string    `gorm:"default:''"                          json:"description"`
	Price       float64   `gorm:"not null"                            json:"price"`
	Stock       int       `gorm:"not null"                            json:"stock"`
	CreatedAt   time.Time `gorm:"autoCreateTime"                      json:"created_at"`
}
