// Package gtp implements a Go Text Protocol engine around a goban.Board.
//
// refer to this
// https://www.lysator.liu.se/%7Egunnar/gtp/gtp2-spec-draft2/gtp2-spec.html
package gtp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/senseis/ranka/game"
	"github.com/senseis/ranka/game/goban"
)

type Engine struct {
	b *goban.Board

	known map[string]Command

	ch  chan string
	ret chan string

	// Generate produces a move for the given colour. genmove fails without it.
	Generate func(b *goban.Board, c game.Colour) game.Point

	name, version string
	komi          float64
}

func New(b *goban.Board, name, version string, known map[string]Command) *Engine {
	if known == nil {
		known = StandardLib()
	}
	return &Engine{
		b:       b,
		known:   known,
		name:    name,
		version: version,
	}
}

func (e *Engine) Start() (input, output chan string) {
	e.ch = make(chan string)
	e.ret = make(chan string)
	go e.start()
	return e.ch, e.ret
}

// Board returns the board the engine plays on.
func (e *Engine) Board() *goban.Board { return e.b }

// Komi returns the komi last set over the protocol.
func (e *Engine) Komi() float64 { return e.komi }

func (e *Engine) start() {
	defer close(e.ret)
	for cmd := range e.ch {
		id, x, args, err := e.parse(cmd)
		if x == nil && err == nil {
			// empty lines and comments produce no response, but a consumed
			// id must still be acknowledged or lockstep readers block
			if id != -1 {
				e.ret <- handleResult(id, "", nil)
			}
			continue
		}
		if err != nil {
			e.ret <- handleErr(id, err)
			continue
		}
		id, result, err := x.Do(id, args, e)
		e.ret <- handleResult(id, result, err)
	}
}

func (e *Engine) parse(cmd string) (id int, x Command, args []string, err error) {
	cmd = preprocess(cmd)
	if cmd == "" || strings.HasPrefix(cmd, "#") {
		return -1, nil, nil, nil
	}
	tokens := strings.Fields(cmd)
	if id, err = strconv.Atoi(tokens[0]); err == nil {
		// we've consumed ID
		tokens = tokens[1:]
	} else {
		// set err to nil because ID is optional
		err = nil
		id = -1
	}

	if len(tokens) == 0 {
		return id, nil, nil, nil // an id with no command; start() acknowledges it
	}

	var ok bool
	if x, ok = e.known[tokens[0]]; !ok {
		return id, nil, nil, errors.Errorf("Unknown command %q", tokens[0])
	}
	if len(tokens) > 1 {
		args = tokens[1:]
	}
	return
}

func preprocess(a string) string {
	return strings.ToLower(strings.TrimSpace(a))
}

func handleErr(id int, err error) string {
	if id != -1 {
		return fmt.Sprintf("? %d %v\n\n", id, err)
	}
	return fmt.Sprintf("? %v\n\n", err)
}

func handleResult(id int, result string, err error) string {
	if err != nil {
		return handleErr(id, err)
	}

	if id != -1 {
		return fmt.Sprintf("= %d %v\n\n", id, result)
	}
	return fmt.Sprintf("= %v\n\n", result)
}
