package gtp

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/senseis/ranka/game"
)

type Command interface {
	Do(id int, args []string, e *Engine) (int, string, error)
}

type stdlib func(e *Engine) string

type stdlib2 func(e *Engine, args []string) (string, error)

func (f stdlib) Do(id int, args []string, e *Engine) (int, string, error) {
	str := f(e)
	return id, str, nil
}

func (f stdlib2) Do(id int, args []string, e *Engine) (int, string, error) {
	str, err := f(e, args)
	return id, str, err
}

func protocolVersion(e *Engine) string { return "2" }
func name(e *Engine) string            { return e.name }
func version(e *Engine) string         { return e.version }

func listCommands(e *Engine) string {
	var buf bytes.Buffer
	for c := range e.known {
		fmt.Fprintf(&buf, "%v\n", c)
	}
	return buf.String()
}

func quit(e *Engine) string       { close(e.ch); return "" }
func clearBoard(e *Engine) string { e.b.Reset(e.b.Size()); return "" }
func showboard(e *Engine) string  { return fmt.Sprintf("\n%s", e.b) }

func knownCommand(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"known_command\"")
	}
	if _, ok := e.known[args[0]]; ok {
		return "true", nil
	}
	return "false", nil
}

func boardSize(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"boardsize\"")
	}
	newsize, err := strconv.Atoi(args[0])
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse first argument of boardsize")
	}
	if newsize < 2 || newsize > game.MaxSize {
		return "", errors.Errorf("Board size %d out of range [2, %d]", newsize, game.MaxSize)
	}
	e.b.Reset(newsize)
	return "", nil
}

func komi(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"komi\"")
	}

	komi, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", errors.WithMessage(err, "Unable to parse komi argument")
	}

	e.komi = komi // accept komi even if ridiculous, GTP says so
	return "", nil
}

func play(e *Engine, args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("Not enough arguments for \"play\"")
	}
	c, err := ParseColour(args[0])
	if err != nil {
		return "", err
	}
	p, err := ParseVertex(args[1], e.b.Size())
	if err != nil {
		return "", err
	}
	if err := e.b.PlayMove(p, c); err != nil {
		return "", errors.WithMessage(err, "illegal move")
	}
	return "", nil
}

func genmove(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"genmove\"")
	}
	if e.Generate == nil {
		return "", errors.New("Unable to generate moves. No generator found")
	}
	c, err := ParseColour(args[0])
	if err != nil {
		return "", err
	}

	p := e.Generate(e.b, c)
	switch {
	case p.IsResign():
		return "resign", nil
	case p.IsPass():
		if err := e.b.PlayMove(game.Pass, c); err != nil {
			return "", err
		}
		return "pass", nil
	}

	// the generator's contract allows illegal picks; re-check before playing
	if !e.b.IsLegal(p, c) {
		return "", errors.Errorf("illegal move from generator: %s", FormatPoint(p, e.b.Size()))
	}
	if err := e.b.PlayMove(p, c); err != nil {
		return "", err
	}
	return FormatPoint(p, e.b.Size()), nil
}

func legalMoves(e *Engine, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("Not enough arguments for \"legal_moves\"")
	}
	c, err := ParseColour(args[0])
	if err != nil {
		return "", err
	}
	moves := game.GenerateLegalMoves(e.b, c)
	verts := make([]string, 0, len(moves))
	for _, m := range moves {
		verts = append(verts, FormatPoint(m, e.b.Size()))
	}
	sort.Strings(verts)
	return strings.Join(verts, " "), nil
}

func StandardLib() map[string]Command {
	return map[string]Command{
		"protocol_version": stdlib(protocolVersion),
		"name":             stdlib(name),
		"version":          stdlib(version),
		"list_commands":    stdlib(listCommands),
		"quit":             stdlib(quit),
		"clear_board":      stdlib(clearBoard),
		"showboard":        stdlib(showboard),

		"known_command": stdlib2(knownCommand),
		"boardsize":     stdlib2(boardSize),
		"komi":          stdlib2(komi),
		"play":          stdlib2(play),
		"genmove":       stdlib2(genmove),
		"legal_moves":   stdlib2(legalMoves),
	}
}
