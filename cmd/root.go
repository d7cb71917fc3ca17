/*
	Copyright 2023 Markus Papenbrock
*/

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mpapenbr/careerstats/log"
	driverCmd "github.com/mpapenbr/careerstats/pkg/cmd/driver"
	infoCmd "github.com/mpapenbr/careerstats/pkg/cmd/info"
	leaderboardCmd "github.com/mpapenbr/careerstats/pkg/cmd/leaderboard"
	queryCmd "github.com/mpapenbr/careerstats/pkg/cmd/query"
	seasonCmd "github.com/mpapenbr/careerstats/pkg/cmd/season"
	"github.com/mpapenbr/careerstats/pkg/cmd/util"
	"github.com/mpapenbr/careerstats/pkg/config"
	"github.com/mpapenbr/careerstats/version"
)

const envPrefix = "CSTATS"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "careerstats",
	Short:   "Statistics for racing career save files",
	Long:    ``,
	Version: version.FullVersion,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, err := util.SetupLogger(os.Stderr)
		if err != nil {
			return err
		}
		cmd.SetContext(log.AddToContext(cmd.Context(), logger))
		logger.Debug("Config:",
			log.String("file", config.CareerFile),
			log.String("output", config.OutputFormat),
			log.Bool("watch", config.Watch),
			log.String("cacheExpiration", config.CacheExpiration))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	// points and metric values are numbers in json and yaml output
	decimal.MarshalJSONWithoutQuotes = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.careerstats.yml)")

	rootCmd.PersistentFlags().StringVarP(&config.CareerFile, "file", "f",
		"",
		"career save file")
	rootCmd.PersistentFlags().StringVarP(&config.OutputFormat, "output", "o",
		"table",
		"output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&config.Watch, "watch", "w",
		false,
		"render the view again whenever the career file changes")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel,
		"log-level",
		"warn",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat,
		"log-format",
		"text",
		"controls the log output format (json, text)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilter,
		"log-filter",
		"",
		"zapfilter rules to restrict log output, e.g. 'debug:loader* info+:*'")
	rootCmd.PersistentFlags().StringVar(&config.CacheExpiration,
		"cache-expiration",
		"0s",
		"duration after which the career file is read again (0s keeps it until changed)")

	// add commands here
	rootCmd.AddCommand(infoCmd.NewInfoCmd())
	rootCmd.AddCommand(seasonCmd.NewSeasonCmd())
	rootCmd.AddCommand(driverCmd.NewDriverCmd())
	rootCmd.AddCommand(leaderboardCmd.NewLeaderboardCmd())
	rootCmd.AddCommand(queryCmd.NewQueryCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".careerstats" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".careerstats")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindAllFlags(rootCmd, viper.GetViper())
}

func bindAllFlags(cmd *cobra.Command, v *viper.Viper) {
	bindFlags(cmd, v)
	for _, sub := range cmd.Commands() {
		bindAllFlags(sub, v)
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to CSTATS_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
