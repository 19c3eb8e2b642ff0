package cmd

import (
	"errors"
	"os"
	"os/exec"
	"slices"
	"strconv"
)

const (
	EnvLedgerFile = "BMS_LEDGER_FILE"
	EnvCurrency   = "BMS_CURRENCY"
	EnvVerbose    = "BMS_VERBOSE"
)

// IsCommand reports whether name is a builtin subcommand.
func IsCommand(name string) bool {
	return slices.Contains(commandNames(), name) || slices.Contains([]string{"help", "flags", "commands"}, name)
}

// RunExtension attempts to find and execute an external bms-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The global flags are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "bms-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logger.Debug("external command not found in PATH", "command", externalCmdName, "err", err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvLedgerFile+"="+*ledgerFile)
	cmd.Env = append(cmd.Env, EnvCurrency+"="+*currency)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		logger.Error("cannot execute external command", "command", externalCmdName, "err", err)
		return true, 1
	}
	return true, 0
}
