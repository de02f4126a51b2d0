// Command boggle loads a word list and prints every word found on a fixed
// 4×4 demonstration board.
//
// Configuration comes from the environment, optionally seeded from a .env
// file in the working directory:
//
//	DICTIONARY_FILE=/path/to/words.txt   (required)
//	LOG_LEVEL=info                       (zerolog level)
//	BOGGLE_LIMIT=0                       (0 = print every word)
//	BOGGLE_MIN_LENGTH=3
//	BOGGLE_UNIQUE=true
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/boggle/grid"
	"github.com/katalvlaran/boggle/solver"
	"github.com/katalvlaran/boggle/wordlist"
)

// demoTiles is the board printed by the command, row-major.
var demoTiles = []string{
	"E", "G", "T", "E",
	"Qu", "I", "N", "A",
	"A", "P", "E", "S",
	"C", "O", "R", "T",
}

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	d, err := wordlist.Load(cfg.DictionaryFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	log.Info().Str("file", cfg.DictionaryFile).Int("words", d.Len()).Msg("dictionary loaded")

	g, err := grid.New(4, 4, demoTiles)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build board")
	}
	fmt.Print(g)
	fmt.Printf("board position (1, 2) is: %s\n", g.TileAt(1, 2))

	res, err := solver.Solve(context.Background(), g, d,
		solver.WithLimit(cfg.Limit),
		solver.WithMinWordLength(cfg.MinLength),
		solver.WithUnique(cfg.Unique),
		solver.WithLogger(log.Logger),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("solve failed")
	}

	for i, w := range res.Words {
		fmt.Printf("%-16s %s\n", w, formatPath(g, res.Paths[i]))
	}
	log.Info().
		Int("found", len(res.Words)).
		Int("paths", res.Yields).
		Bool("truncated", res.Truncated).
		Msg("done")
}

// formatPath renders cell indices as (row,col) pairs.
func formatPath(g *grid.Grid, path []int) string {
	out := ""
	for i, cell := range path {
		r, c := g.Coordinate(cell)
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("(%d,%d)", r, c)
	}

	return out
}
