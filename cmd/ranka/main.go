// Command ranka is a GTP Go player. Point a GTP controller (gogui, KaTrain,
// play scripts) at it, or drive it by hand on stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/senseis/ranka"
	"github.com/senseis/ranka/game/goban"
	"github.com/senseis/ranka/gtp"
)

var (
	size     = flag.Int("size", 7, "initial board size")
	komi     = flag.Float64("komi", 6.5, "komi used by the flat Monte-Carlo player to judge playouts")
	player   = flag.String("player", "random", "player type: random or flatmc")
	playouts = flag.Int("playouts", 200, "playout budget per move for the flatmc player")
	seed     = flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
	eyeFill  = flag.Bool("eyefill", true, "allow the random player to fill its own eyes")
)

func main() {
	flag.Parse()
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(*seed))

	var p ranka.Player
	switch *player {
	case "random":
		rp := ranka.NewRandomPlayer(r)
		rp.UseEyeFilter = !*eyeFill
		p = rp
	case "flatmc":
		p = ranka.NewFlatMCPlayer(*playouts, float32(*komi), r)
	default:
		log.Fatalf("unknown player %q", *player)
	}

	e := gtp.New(goban.New(*size), p.Name(), p.Version(), nil)
	e.Generate = p.GenMove
	in, out := e.Start()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		in <- line
		fmt.Print(<-out)
		if isQuit(line) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

// isQuit detects the quit command so we stop feeding a closed engine.
func isQuit(line string) bool {
	tokens := strings.Fields(strings.ToLower(line))
	if len(tokens) > 0 && unicode.IsDigit(rune(tokens[0][0])) {
		tokens = tokens[1:] // skip the optional command id
	}
	return len(tokens) > 0 && tokens[0] == "quit"
}
