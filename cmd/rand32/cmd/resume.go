package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rand32/rand32/random"
)

var flagStateIn string

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Continue a stream from a saved generator state",
	Run:   runResume,
}

func init() {
	resumeCmd.Flags().StringVar(&flagStateIn, "state-in", "",
		"state file written by generate --state-out")
	resumeCmd.Flags().IntVarP(&flagCount, "count", "n", 10,
		"number of values to emit")
	resumeCmd.Flags().StringVarP(&flagDomain, "domain", "d", "uint32",
		"value domain: uint32, int32 or fract32")
	resumeCmd.Flags().StringVar(&flagMin, "min", "",
		"inclusive lower bound (domain minimum when omitted)")
	resumeCmd.Flags().StringVar(&flagMax, "max", "",
		"exclusive upper bound (domain maximum when omitted)")
	resumeCmd.Flags().StringVar(&flagStateOut, "state-out", "",
		"write the advanced state back to this file")

	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, args []string) {
	if flagStateIn == "" {
		log.Fatal().Msg("--state-in is required")
	}
	data, err := os.ReadFile(flagStateIn)
	if err != nil {
		log.Fatal().Err(err).Str("path", flagStateIn).Msg("could not read state file")
	}
	state, err := random.DecodeState(data)
	if err != nil {
		log.Fatal().Err(err).Msg("could not decode generator state")
	}
	gen, err := random.Restore(state)
	if err != nil {
		log.Fatal().Err(err).Msg("could not restore generator")
	}
	log.Info().Str("algo", string(state.Algo())).Msg("restored generator")
	if err := emit(gen, flagCount); err != nil {
		log.Fatal().Err(err).Msg("generating values failed")
	}
	if flagStateOut != "" {
		writeState(gen, flagStateOut)
	}
}
