package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ninter/setools"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// loadConfig reads the program defaults. Values come from, in increasing order
// of priority, built-in defaults, the optional config file, and NSS_*
// environment variables. Command-line flags are applied on top by the caller.
func loadConfig(configFile string) (*viper.Viper, error) {
	config := viper.New()
	config.SetDefault("codec", "base64")
	config.SetDefault("log_level", "warning")
	config.SetDefault("log_file_path", "")

	config.SetEnvPrefix("nss")
	config.AutomaticEnv()

	if configFile != "" {
		config.SetConfigFile(configFile)
		err := config.ReadInConfig()
		if err != nil {
			return nil, setools.ErrInvalidArgument.Wrap(
				fmt.Errorf("can't read config file `%s`: %w", configFile, err),
			)
		}
	}
	return config, nil
}

// newLogger creates the program's logger from the `log_level` and
// `log_file_path` settings. If a log file is configured it's returned as well
// so it can be closed when the program exits.
func newLogger(config *viper.Viper, defaultOutput io.Writer) (*logrus.Logger, io.Closer, error) {
	var w io.Writer = defaultOutput
	var closer io.Closer

	logFile := config.GetString("log_file_path")
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, setools.ErrIOFailed.Wrap(err)
		}
		w = file
		closer = file
	}

	logLvl, err := logrus.ParseLevel(config.GetString("log_level"))
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, nil, setools.ErrInvalidArgument.Wrap(err)
	}

	logger := &logrus.Logger{
		Out: w,
		Formatter: &logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
			DisableSorting:  true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: logLvl,
	}
	return logger, closer, nil
}
