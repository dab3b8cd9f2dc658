package items

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound     = errors.New("items: not found")
	ErrInvalidInput = errors.New("items: invalid input")
)

// Item is a catalog entry owned by the account that created it.
type Item struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Input is the caller-supplied part of an item.
type Input struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidInput
	}
	if in.Price < 0 {
		return ErrInvalidInput
	}
	return nil
}
