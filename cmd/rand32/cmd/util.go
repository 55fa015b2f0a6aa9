package cmd

import (
	"strconv"

	"github.com/rand32/rand32/entropy"
	"github.com/rand32/rand32/random"
)

// resolveSeed turns the --seed flag into a Seed: integers parse as
// numeric seeds, anything else is a string seed, and an omitted flag
// draws a fresh seed from the default entropy source.
func resolveSeed() (random.Seed, error) {
	if flagSeed != "" {
		if n, err := strconv.ParseInt(flagSeed, 10, 64); err == nil {
			return random.IntSeed(n), nil
		}
		return random.StringSeed(flagSeed), nil
	}
	seed, err := random.ResolveSeed(nil, nil, entropy.Default())
	if err != nil {
		return random.Seed{}, err
	}
	log.Info().Str("seed", seed.String()).Msg("drew entropy seed")
	return seed, nil
}

// newGenerator builds the generator selected by the persistent flags.
func newGenerator() (random.Rand, error) {
	seed, err := resolveSeed()
	if err != nil {
		return nil, err
	}
	return random.New(random.Algo(flagAlgo), seed)
}

// parseBound parses a bound flag, returning def when the flag is empty.
func parseBound(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}
