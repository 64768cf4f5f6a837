package main

import "github.com/keurnel/riscv-asm/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
