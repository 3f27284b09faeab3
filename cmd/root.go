package cmd

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sccache-tools/sccache-dist-check/pkg/checks"
)

var checkConfig = checks.CheckConfig{LogLevel: "info"}

var modeFlag string

var distCheckCmd = &cobra.Command{ // nolint:gochecknoglobals
	PersistentPreRunE: configLogger,
	Use:               "sccache-dist-check",
	Short:             "CLI to check if your environment is set up correctly to use distributed sccache",
	SilenceUsage:      true,
	RunE:              runDiagnosis,
}

func configLogger(cmd *cobra.Command, args []string) error {
	lvl, err := log.ParseLevel(checkConfig.LogLevel)
	if err != nil {
		log.WithField("log-level", checkConfig.LogLevel).Fatal("incorrect log level")

		return fmt.Errorf("incorrect log level")
	}

	log.SetLevel(lvl)
	log.WithField("log-level", checkConfig.LogLevel).Debug("log level configured")

	return nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		// Each flag is reachable through its SCCACHE_* equivalent, e.g.
		// --container-name through SCCACHE_CONTAINER_NAME
		envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

		err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", "SCCACHE", envVarSuffix))
		if err != nil {
			log.Fatal(err)
			os.Exit(-1)
		}

		// Apply the viper value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)

			err := cmd.PersistentFlags().Set(f.Name, fmt.Sprintf("%v", val))
			if err != nil {
				log.Fatal(err)
				os.Exit(-1)
			}
		}
	})
}

func init() {
	v := readEnv()

	distCheckCmd.PersistentFlags().StringVar(&checkConfig.LogLevel, "log-level",
		"info", "set log level verbosity (options: debug, info, error, warning)")

	distCheckCmd.PersistentFlags().StringVar(&checkConfig.ConfPath, "conf", "", "path to the sccache config file "+
		"(default is ~/.config/sccache/config)")

	distCheckCmd.PersistentFlags().StringVar(&checkConfig.ContainerName, "container-name",
		checks.DefaultContainerName, "name of the container hosting the scheduler and builder")
	distCheckCmd.PersistentFlags().StringVar(&modeFlag, "check-mode", string(checks.ModeReachability),
		fmt.Sprintf("runtime check mode (options: %s, %s)", checks.ModeReachability, checks.ModeLocalPorts))
	bindFlags(distCheckCmd, v)
}

func readEnv() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("SCCACHE")

	// Bind to environment variables
	// Works great for simple config names, but needs help for names
	// like --container-name which we fix in the bindFlags function
	v.AutomaticEnv()

	return v
}

func Execute() error {
	distCheckCmd.AddCommand(diagnoseCommand)
	return distCheckCmd.Execute()
}
