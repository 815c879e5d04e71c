package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

var (
	errZeroVector = errors.New("movement vector cannot be zero")
	errBigStep    = errors.New("movement is limited to one tile per turn")
	errNoItem     = errors.New("itemId is required")
)

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errZeroVector
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errBigStep
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.ItemID == "" {
		return errNoItem
	}
	return nil
}
