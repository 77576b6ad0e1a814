package transport

import (
	"errors"
	"strconv"
)

// Pointer fields distinguish "absent" from "present but zero": update payloads
// merge only the keys the client actually sent. Price and Stock are decoded as
// `any` because the API accepts them as JSON numbers or numeric strings.

type SignupRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
}

type CreateProductRequest struct {
	PName       *string `json:"pname"`
	Description *string `json:"description"`
	Price       any     `json:"price"`
	Stock       any     `json:"stock"`
}

type UpdateProductRequest struct {
	PName       *string `json:"pname"`
	Description *string `json:"description"`
	Price       any     `json:"price"`
	Stock       any     `json:"stock"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ProductSummary struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

var ErrNotANumber = errors.New("value is not a number")

func ToFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, ErrNotANumber
		}
		return f, nil
	default:
		return 0, ErrNotANumber
	}
}

func ToInt(v any) (int, error) {
	switch t := v.(type) {
	case float64:
		return int(t), nil
	case int:
		return t, nil
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, ErrNotANumber
		}
		return n, nil
	default:
		return 0, ErrNotANumber
	}
}
