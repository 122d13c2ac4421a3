package goban

import (
	"fmt"

	"github.com/senseis/ranka/game"
)

type moveError struct {
	point  game.Point
	colour game.Colour
}

func (err moveError) Error() string {
	return fmt.Sprintf("unable to play %v at %d", err.colour, err.point)
}
