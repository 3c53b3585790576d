// Command bfvm drives the brainfuck-zkvm core from the terminal: it
// compiles a source file, executes it against stdin/stdout, and can
// print the compiled program memory or fingerprint a run -- the
// concrete, non-interactive instance of the external CLI collaborator
// the core specification treats as out of scope.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vybium/vybium-bf-vm/pkg/bfvm"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "bfvm",
		Short: "Compile and execute brainfuck-zkvm programs",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable per-cycle trace logging")

	var tapeCapacity int
	var cycleCap int

	runCmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Compile and execute a program, logging its trace rows with -v",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], tapeCapacity, cycleCap, verbose)
		},
	}
	runCmd.Flags().IntVar(&tapeCapacity, "tape", 256, "tape capacity in cells")
	runCmd.Flags().IntVar(&cycleCap, "cycle-cap", 0, "abort after this many cycles (0 = unbounded)")

	compileCmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a program and dump its field-encoded memory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compileFile(args[0])
		},
	}

	digestCmd := &cobra.Command{
		Use:   "digest <file>",
		Short: "Print the program and trace fingerprints of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return digestFile(args[0], tapeCapacity)
		},
	}
	digestCmd.Flags().IntVar(&tapeCapacity, "tape", 256, "tape capacity in cells")

	root.AddCommand(runCmd, compileCmd, digestCmd)
	return root
}

func loadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func runFile(path string, tapeCapacity, cycleCap int, verbose bool) error {
	source, err := loadSource(path)
	if err != nil {
		log.WithError(err).Error("failed to read source file")
		return err
	}

	prog, err := bfvm.Compile(source)
	if err != nil {
		log.WithError(err).Error("compilation failed")
		return err
	}

	cfg := bfvm.DefaultMachineConfig().WithTapeCapacity(tapeCapacity).WithCycleCap(cycleCap)
	machine, err := bfvm.NewMachine(prog, os.Stdin, os.Stdout, cfg)
	if err != nil {
		log.WithError(err).Error("failed to construct machine")
		return err
	}
	if verbose {
		machine.SetTraceLogger(&vmLogger{})
	}

	trace, err := machine.Run(cycleCap)
	if err != nil {
		log.WithFields(logrus.Fields{
			"rows": len(trace),
		}).WithError(err).Error("execution failed")
		return err
	}

	log.WithField("rows", len(trace)).Info("execution finished")
	return nil
}

func compileFile(path string) error {
	source, err := loadSource(path)
	if err != nil {
		log.WithError(err).Error("failed to read source file")
		return err
	}
	prog, err := bfvm.Compile(source)
	if err != nil {
		log.WithError(err).Error("compilation failed")
		return err
	}
	fmtPrint(prog.String())
	return nil
}

func digestFile(path string, tapeCapacity int) error {
	source, err := loadSource(path)
	if err != nil {
		log.WithError(err).Error("failed to read source file")
		return err
	}
	prog, err := bfvm.Compile(source)
	if err != nil {
		log.WithError(err).Error("compilation failed")
		return err
	}

	progDigest, err := bfvm.ProgramDigest(prog)
	if err != nil {
		log.WithError(err).Error("failed to fingerprint program")
		return err
	}

	cfg := bfvm.DefaultMachineConfig().WithTapeCapacity(tapeCapacity)
	machine, err := bfvm.NewMachine(prog, os.Stdin, os.Stdout, cfg)
	if err != nil {
		log.WithError(err).Error("failed to construct machine")
		return err
	}
	trace, err := machine.Run(0)
	if err != nil {
		log.WithError(err).Error("execution failed")
		return err
	}

	log.WithFields(logrus.Fields{
		"program": string(progDigest),
		"trace":   string(bfvm.TraceDigest(trace)),
	}).Info("digest")
	return nil
}

func fmtPrint(s string) {
	os.Stdout.WriteString(s)
}

// vmLogger adapts the package logger to bfvm.TraceLogger.
type vmLogger struct{}

func (l *vmLogger) LogCycle(r bfvm.Registers) {
	log.WithFields(logrus.Fields{
		"clk": r.Clk.String(),
		"ip":  r.Ip.String(),
		"ci":  r.Ci.String(),
		"ni":  r.Ni.String(),
		"mp":  r.Mp.String(),
		"mv":  r.Mv.String(),
		"mvi": r.Mvi.String(),
	}).Debug("cycle")
}
