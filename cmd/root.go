// Package cmd provides the command-line interface for the diary server.
//
// Configuration is read, highest priority first, from:
//
//  1. command-line flags (--config, --port, --theme, ...)
//  2. DIARY_<SECTION>_<OPTION> environment variables, e.g. DIARY_SERVER_PORT
//  3. the file named by --config or DIARY_CONFIG_FILE
//  4. .diary.yml in the working directory
//
// A .env file in the working directory is loaded into the environment first
// when present.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/diary/internal/errors"
)

// envPrefix prefixes every configuration environment variable.
const envPrefix = "DIARY"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "A server-rendered diary journal",
	Long: `diary serves a small emotion journal: a filterable, searchable list of
diaries, a detail page with retrospects, and light and dark themes.

Quick Start:
  diary serve                     Start the server on localhost:8080
  diary serve --data diaries.yml  Serve a custom fixture with live reload
  diary render /diaries/1         Print one page to stdout
  diary version                   Show build information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", errors.FormatError(err))
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .diary.yml, can also use DIARY_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	switch {
	case cfgFile != "":
		viper.SetConfigFile(cfgFile)
	case os.Getenv(envPrefix+"_CONFIG_FILE") != "":
		viper.SetConfigFile(os.Getenv(envPrefix + "_CONFIG_FILE"))
	default:
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".diary")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
