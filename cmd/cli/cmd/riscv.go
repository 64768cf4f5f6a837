package cmd

import (
	"github.com/keurnel/riscv-asm/cmd/cli/cmd/riscv"
	"github.com/spf13/cobra"
)

var riscvCmd = &cobra.Command{
	Use:     "riscv",
	GroupID: "arch",
	Short:   "RISC-V architecture",
	Long:    `Functions related to the RISC-V architecture.`,
}

func init() {
	riscvCmd.AddGroup(&cobra.Group{
		ID:    "file-operations",
		Title: "File operations",
	})
	riscvCmd.AddCommand(riscv.AssembleFileCmd)
}
