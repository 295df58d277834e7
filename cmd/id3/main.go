package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "ID3"

type rootCmdConfig struct {
	*zap.SugaredLogger
	verbose    bool
	configFile string
	logger     *zap.Logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	config.setLogger(zap.NewNop())
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "id3 is a tool to grow decision trees with the ID3 algorithm",
		Long:  `A tool to grow decision trees from categorical data, test them, and use them to classify new cases`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := bindFlags(cmd, config.configFile)
			if err != nil {
				return err
			}
			config.setLogger(newLogger(config.verbose))
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress information on STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YAML, TOML or JSON file with values for any flag")
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		classifyCmd(config),
		testCmd(config),
		domainCmd(config),
		importCmd(config),
	)
	return rootCmd
}

/*
bindFlags sets every flag of the command that was not given on the
command line from the ID3_ prefixed environment variable with its name
(dashes turned into underscores) or, failing that, from the key with its
name on the config file, if any.
*/
func bindFlags(cmd *cobra.Command, configFile string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		err = cmd.Flags().Set(f.Name, v.GetString(f.Name))
	})
	return err
}
