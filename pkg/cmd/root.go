package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

var RootCmd = &cobra.Command{
	Use:   "bstree",
	Short: "bstree binary search tree toolkit",
	Long:  "run scripted operations and acceptance checks against an integer binary search tree",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// cmd.Flags() contains the inherited persistent flags once parsed
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return errors.Wrap(err, "failed to bind flags")
		}

		configFile, err := loadConfigFile()
		if err != nil {
			return err
		}

		if err := setupLogger(); err != nil {
			return err
		}

		if configFile != "" {
			log.Infof("config file %s loaded", configFile)
		}

		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	PersistentFlags(RootCmd.PersistentFlags())

	viper.SetEnvPrefix("bstree")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()
}

// PersistentFlags defines the global flags, they can also be set in the
// config file or with BSTREE_ prefixed environment variables.
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.String("config", "", "config file")
	flags.String("log-file", "", "also write json logs to this file, rotated by size")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("tree-name", "default", "tree name used in the metric labels")
}

// loadConfigFile reads the config file given by --config and returns its
// path, or an empty string when no config file is set.
func loadConfigFile() (string, error) {
	configFile := viper.GetString("config")
	if configFile == "" {
		return "", nil
	}

	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return "", errors.Wrapf(err, "unable to load config file %s", configFile)
	}

	return viper.ConfigFileUsed(), nil
}

func setupLogger() error {
	log.SetFormatter(&prefixed.TextFormatter{
		DisableColors: viper.GetBool("no-color"),
		FullTimestamp: true,
	})

	logger := log.StandardLogger()
	if viper.GetBool("debug") {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	logFile := viper.GetString("log-file")
	if logFile == "" {
		return nil
	}

	writer := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	logger.AddHook(
		lfshook.NewHook(
			lfshook.WriterMap{
				log.DebugLevel: writer,
				log.InfoLevel:  writer,
				log.WarnLevel:  writer,
				log.ErrorLevel: writer,
				log.FatalLevel: writer,
			},
			&log.JSONFormatter{},
		),
	)

	return nil
}

func withColor() bool {
	return !viper.GetBool("no-color")
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}
