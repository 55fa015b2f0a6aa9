package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rand32/rand32/utils/sampling"
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle stdin lines with a seeded generator",
	Run:   runShuffle,
}

func init() {
	rootCmd.AddCommand(shuffleCmd)
}

func runShuffle(cmd *cobra.Command, args []string) {
	gen, err := newGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("could not build generator")
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("reading stdin failed")
	}

	err = sampling.Shuffle(len(lines), gen.Uint32Range, func(i, j int) {
		lines[i], lines[j] = lines[j], lines[i]
	})
	if err != nil {
		log.Fatal().Err(err).Msg("shuffle failed")
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}
