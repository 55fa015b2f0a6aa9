package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	flagAlgo string
	flagSeed string
	log      zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rand32",
	Short: "Generate deterministic 32-bit random streams",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagAlgo, "algo", "a", "xor128",
		"generator algorithm")
	rootCmd.PersistentFlags().StringVarP(&flagSeed, "seed", "s", "",
		"generator seed (integer or string); a fresh entropy seed when omitted")

	// accept underscored flag spellings such as --state_out
	rootCmd.PersistentFlags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	log = zerolog.New(zerolog.NewConsoleWriter())

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetEnvPrefix("RAND32")
	viper.AutomaticEnv()
}
