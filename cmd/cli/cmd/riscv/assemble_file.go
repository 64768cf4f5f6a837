package riscv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/keurnel/riscv-asm/internal/debugcontext"
	"github.com/keurnel/riscv-asm/internal/riscv"
	"github.com/keurnel/riscv-asm/internal/riscvconfig"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dumpFlag   bool
	configFlag string
)

var AssembleFileCmd = &cobra.Command{
	Use:     "assemble-file <assembly-file>",
	GroupID: "file-operations",
	Short:   "Assemble a RISC-V assembly file into a relocatable object.",
	Long:    `Assemble a RISC-V assembly file into a relocatable object.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAssembleFile(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	},
}

func init() {
	AssembleFileCmd.Flags().BoolVar(&dumpFlag, "dump", false, "print a YAML dump of the resulting object and trace")
	AssembleFileCmd.Flags().StringVar(&configFlag, "config", "", "path to a TOML assembler configuration file")
}

// runAssembleFile orchestrates the full pipeline: resolve the file, load
// configuration, read the source, assemble, and report the result.
func runAssembleFile(cmd *cobra.Command, args []string) error {
	fullPath, err := resolveFilePath(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source, err := readSourceFile(fullPath)
	if err != nil {
		return err
	}

	trace := debugcontext.NewDebugContext(fullPath)
	obj, err := riscv.Assemble(source, cfg, trace)
	if err != nil {
		return err
	}

	if dumpFlag {
		return dumpObject(cmd, obj, trace)
	}

	cmd.Printf("assembled %s: %d bytes, %d symbols, %d pending relocations\n",
		filepath.Base(fullPath), len(obj.Binary), len(obj.Symbols), len(obj.Relocations))
	return nil
}

// resolveFilePath validates the CLI arguments and returns the absolute
// path to the assembly file.
func resolveFilePath(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("no assembly file provided")
	}
	if args[0] == "" {
		return "", fmt.Errorf("assembly file path is empty")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to get current working directory: %w", err)
	}

	fullPath := args[0]
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(cwd, fullPath)
	}
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return "", fmt.Errorf("assembly file does not exist at path: %s", fullPath)
	}

	return fullPath, nil
}

// readSourceFile reads the assembly source file and returns its content.
func readSourceFile(path string) (string, error) {
	sourceBytes, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read assembly file: %w", err)
	}
	return string(sourceBytes), nil
}

// loadConfig loads the TOML configuration named by --config, or falls
// back to the built-in default when no path was given.
func loadConfig() (riscvconfig.Config, error) {
	if configFlag == "" {
		return riscvconfig.Default(), nil
	}
	return riscvconfig.Load(configFlag)
}

// dumpObject serializes the object and trace as YAML for tooling; this
// is a dump of the already-defined Object boundary, not an assembly
// listing or disassembly.
func dumpObject(cmd *cobra.Command, obj any, trace *debugcontext.DebugContext) error {
	entries := trace.Entries()
	summaries := make([]string, 0, len(entries))
	for _, e := range entries {
		summaries = append(summaries, e.String())
	}
	out, err := yaml.Marshal(map[string]any{
		"object": obj,
		"trace":  summaries,
	})
	if err != nil {
		return fmt.Errorf("failed to render object dump: %w", err)
	}
	cmd.Print(string(out))
	return nil
}
