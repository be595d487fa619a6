package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseYear reads the optional ?year= season filter; 0 means all seasons.
func parseYear(ctx *fiber.Ctx) (int, error) {
	raw := ctx.Query("year")
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		ctx.Status(fiber.StatusBadRequest)
		return 0, errors.New("год должен быть числом")
	}
	return year, nil
}

type compareRequest struct {
	PlayerA uuid.UUID
	PlayerB uuid.UUID
}

var ErrSamePlayer = errors.New("нельзя сравнить игрока с самим собой")
var ErrMissingPlayer = errors.New("оба игрока должны присутствовать")

func (c compareRequest) Validate() error {
	if c.PlayerA == uuid.Nil || c.PlayerB == uuid.Nil {
		return ErrMissingPlayer
	}
	if c.PlayerA == c.PlayerB {
		return ErrSamePlayer
	}
	return nil
}

func parseCompareRequest(ctx *fiber.Ctx) (compareRequest, error) {
	var err error
	playerA, parseErr := uuid.Parse(ctx.Query("a"))
	err = errors.Join(err, parseErr)
	playerB, parseErr := uuid.Parse(ctx.Query("b"))
	err = errors.Join(err, parseErr)
	if err != nil {
		return compareRequest{}, err
	}
	req := compareRequest{
		PlayerA: playerA,
		PlayerB: playerB,
	}
	if err := req.Validate(); err != nil {
		return compareRequest{}, err
	}
	return req, nil
}
