package cmd

import (
	"fmt"
	"os"

	"github.com/HanHongChen/cnsim-ctl/constant"
	"github.com/HanHongChen/cnsim-ctl/logger"
	"github.com/HanHongChen/cnsim-ctl/profile"
	"github.com/HanHongChen/cnsim-ctl/shell"
	"github.com/HanHongChen/cnsim-ctl/simulator"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "cnsimctl",
	Short:        "This is an interactive shell for the core network simulator.",
	Long:         "This is an interactive shell that configures and controls a core network simulator through its REST API, using named profiles from a profile file.",
	Example:      "cnsimctl -p cnsim-profile.yaml",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         rootFunc,
}

func init() {
	rootCmd.Flags().StringP("profiles", "p", constant.DEFAULT_PROFILE_FILE, "profile file path")
	rootCmd.Flags().StringP("url", "u", constant.API_BASE_URL, "core simulator api base url")
	rootCmd.Flags().StringP("log-level", "l", constant.DEFAULT_LOG_LEVEL, "log level")
	rootCmd.Flags().String("log-file", constant.DEFAULT_LOG_FILE, "log file path")
	rootCmd.Flags().DurationP("timeout", "t", constant.API_REQUEST_TIMEOUT, "api request timeout")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootFunc(cmd *cobra.Command, args []string) error {
	profileFilePath, err := cmd.Flags().GetString("profiles")
	if err != nil {
		return err
	}
	baseUrl, err := cmd.Flags().GetString("url")
	if err != nil {
		return err
	}
	logLevel, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	logFilePath, err := cmd.Flags().GetString("log-file")
	if err != nil {
		return err
	}
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	cliLogger := logger.NewCliLogger(level, logFilePath, false)
	defer cliLogger.Close()
	defer logger.DetachConsole()()

	registry, err := profile.Load(profileFilePath)
	if err != nil {
		cliLogger.CfgLog.Errorf("%v", err)
		return err
	}
	cliLogger.CfgLog.Infof("Loaded profiles %v from %s", registry.Names(), profileFilePath)

	client := simulator.NewClient(baseUrl, timeout, cliLogger.ApiLog)

	sh := shell.NewShell(registry, client, cmd.OutOrStdout(), constant.STATUS_LOOP_INTERVAL, &cliLogger)

	reader, err := shell.NewTerminalReader(os.Stdin, cmd.OutOrStdout(), constant.SHELL_PROMPT, sh.Completer())
	if err != nil {
		cliLogger.ShellLog.Warnf("%v, falling back to plain input", err)
		reader = shell.NewPlainReader(os.Stdin, cmd.OutOrStdout(), constant.SHELL_PROMPT)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			cliLogger.ShellLog.Warnf("Failed to close input: %v", err)
		}
	}()

	if err := sh.Run(cmd.Context(), reader); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}
