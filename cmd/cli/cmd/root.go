package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "riscv-asm",
	Short: "A RISC-V assembler",
	Long:  `riscv-asm assembles RISC-V assembly source into a relocatable object.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {

	rootCmd.AddGroup(&cobra.Group{
		ID:    "arch",
		Title: "Architectures",
	})

	rootCmd.AddCommand(riscvCmd)

	rootCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
