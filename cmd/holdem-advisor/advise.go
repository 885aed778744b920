package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lox/holdem-advisor/internal/advisor"
	"github.com/lox/holdem-advisor/internal/report"
	"github.com/lox/holdem-advisor/poker"
)

type AdviseCmd struct {
	Hole     []string `help:"Two hole cards, e.g. --hole As,Ks or --hole AsKs" required:"" placeholder:"CARD"`
	Board    []string `help:"Community cards (0, 3, 4 or 5)" placeholder:"CARD"`
	Position string   `help:"Table position (UTG, UTG1, UTG2, MP, CO, BTN, SB, BB)" default:"BTN"`
	Stack    float64  `help:"Stack size in big blinds" default:"100"`
	Pot      float64  `help:"Pot size in big blinds" default:"10"`
	Players  int      `help:"Number of players in the hand" default:"6"`
	JSON     bool     `help:"Emit machine readable JSON instead of the report"`
}

func (c *AdviseCmd) Run(rc *runContext) error {
	hole, err := parseCardArgs(c.Hole)
	if err != nil {
		return fmt.Errorf("parsing hole cards: %w", err)
	}
	board, err := parseCardArgs(c.Board)
	if err != nil {
		return fmt.Errorf("parsing board cards: %w", err)
	}

	sit := advisor.Situation{
		Position: c.Position,
		StackBB:  c.Stack,
		PotBB:    c.Pot,
		Players:  c.Players,
	}

	eval, rec, err := rc.advisor.Advise(hole, board, sit)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Hole           string                 `json:"hole"`
			Board          string                 `json:"board"`
			Situation      advisor.Situation      `json:"situation"`
			Evaluation     advisor.Evaluation     `json:"evaluation"`
			Recommendation advisor.Recommendation `json:"recommendation"`
		}{
			Hole:           poker.FormatCards(hole),
			Board:          poker.FormatCards(board),
			Situation:      sit,
			Evaluation:     eval,
			Recommendation: rec,
		})
	}

	fmt.Println(report.Render(hole, board, eval, rec, sit))
	return nil
}

// parseCardArgs accepts either one card per argument or a single
// concatenated run like "AsKs".
func parseCardArgs(args []string) ([]poker.Card, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if len(args) == 1 && len(args[0]) > 3 {
		return poker.ParseCards(args[0])
	}
	cards := make([]poker.Card, 0, len(args))
	for _, arg := range args {
		card, err := poker.ParseCard(arg)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
