package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rand32/rand32/random"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the available generator algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		for _, algo := range random.Algorithms() {
			fmt.Println(algo)
		}
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
