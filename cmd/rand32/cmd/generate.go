package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rand32/rand32/random"
)

var (
	flagCount    int
	flagDomain   string
	flagMin      string
	flagMax      string
	flagStateOut string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Emit values from a seeded generator",
	Run:   runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&flagCount, "count", "n", 10,
		"number of values to emit")
	generateCmd.Flags().StringVarP(&flagDomain, "domain", "d", "uint32",
		"value domain: uint32, int32 or fract32")
	generateCmd.Flags().StringVar(&flagMin, "min", "",
		"inclusive lower bound (domain minimum when omitted)")
	generateCmd.Flags().StringVar(&flagMax, "max", "",
		"exclusive upper bound (domain maximum when omitted)")
	generateCmd.Flags().StringVar(&flagStateOut, "state-out", "",
		"write the generator state to this file after emitting")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	gen, err := newGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("could not build generator")
	}
	if err := emit(gen, flagCount); err != nil {
		log.Fatal().Err(err).Msg("generating values failed")
	}
	if flagStateOut != "" {
		writeState(gen, flagStateOut)
	}
}

// emit prints count values in the selected domain. Without bound flags
// it takes the raw fast path; otherwise it routes through the bounded
// sampler with omitted bounds defaulted to the domain limits.
func emit(gen random.Rand, count int) error {
	bounded := flagMin != "" || flagMax != ""
	for i := 0; i < count; i++ {
		switch flagDomain {
		case "uint32":
			if !bounded {
				fmt.Println(gen.Uint32())
				continue
			}
			min, max, err := uint32Bounds()
			if err != nil {
				return err
			}
			v, err := gen.Uint32Range(min, max)
			if err != nil {
				return err
			}
			fmt.Println(v)
		case "int32":
			if !bounded {
				fmt.Println(gen.Int32())
				continue
			}
			min, max, err := int32Bounds()
			if err != nil {
				return err
			}
			v, err := gen.Int32Range(min, max)
			if err != nil {
				return err
			}
			fmt.Println(v)
		case "fract32":
			if !bounded {
				fmt.Println(gen.Fract32())
				continue
			}
			min, err := parseBound(flagMin, random.MinFract32)
			if err != nil {
				return err
			}
			max, err := parseBound(flagMax, random.MaxFract32Excl)
			if err != nil {
				return err
			}
			v, err := gen.Fract32Range(min, max)
			if err != nil {
				return err
			}
			fmt.Println(v)
		default:
			return fmt.Errorf("unknown domain %q", flagDomain)
		}
	}
	return nil
}

func uint32Bounds() (uint64, uint64, error) {
	min, err := parseBound(flagMin, 0)
	if err != nil {
		return 0, 0, err
	}
	max, err := parseBound(flagMax, float64(random.MaxUint32Excl))
	if err != nil {
		return 0, 0, err
	}
	return uint64(min), uint64(max), nil
}

func int32Bounds() (int64, int64, error) {
	min, err := parseBound(flagMin, float64(random.MinInt32))
	if err != nil {
		return 0, 0, err
	}
	max, err := parseBound(flagMax, float64(random.MaxInt32Excl))
	if err != nil {
		return 0, 0, err
	}
	return int64(min), int64(max), nil
}

func writeState(gen random.Rand, path string) {
	data, err := random.EncodeState(gen.State())
	if err != nil {
		log.Fatal().Err(err).Msg("could not encode generator state")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("could not write state file")
	}
	log.Info().Str("path", path).Msg("wrote generator state")
}
