package ranka

import (
	"encoding/csv"
	"os"
	"strconv"
)

// Statistics tracks the win/loss/draw series of the players in a match.
// Series are keyed per combatant, so two players of the same type never
// share a column.
type Statistics struct {
	Creation []string
	Wins     map[string][]float32
	Losses   map[string][]float32
	Draws    map[string][]float32
}

func makeStatistics() Statistics {
	return Statistics{
		Creation: make([]string, 0, 64),
		Wins:     make(map[string][]float32),
		Losses:   make(map[string][]float32),
		Draws:    make(map[string][]float32),
	}
}

func (s *Statistics) update(c *combatant) {
	if _, ok := s.Wins[c.key]; !ok {
		s.Creation = append(s.Creation, c.key)
	}

	s.Wins[c.key] = append(s.Wins[c.key], c.Wins)
	s.Losses[c.key] = append(s.Losses[c.key], c.Loss)
	s.Draws[c.key] = append(s.Draws[c.key], c.Draw)
}

// Dump writes the win-rate series as CSV, one column per player.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(s.Creation); err != nil {
		return err
	}
	var records [][]string
	for i, player := range s.Creation {
		for j, win := range s.Wins[player] {
			record := make([]string, len(s.Creation))
			winRate := win / (win + s.Losses[player][j] + s.Draws[player][j])

			record[i] = strconv.FormatFloat(float64(winRate), 'f', 3, 32)
			records = append(records, record)
		}
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return nil
}
