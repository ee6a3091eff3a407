// loadmon is a host-side companion for the dcload instrument: it lists
// serial ports, streams live telemetry, and records sessions to CSV.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/itohio/dcload/pkg/config"
	"github.com/itohio/dcload/pkg/monitor"
)

var rootCmd = &cobra.Command{
	Use:   "loadmon",
	Short: "loadmon watches and records dcload telemetry",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var rootOpts = struct {
	Config string
}{}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOpts.Config, "config", "c", "loadmon.yaml", "monitor configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(rootOpts.Config)
}

// newInstrument picks the telemetry source: the mock, or the serial port
// with flag values overriding the config.
func newInstrument(cfg *config.Config, useMock bool, port string, baud int) monitor.Instrument {
	if useMock {
		return monitor.NewMock(&cfg.Mock)
	}
	if port == "" {
		port = cfg.Serial.Port
	}
	if baud <= 0 {
		baud = cfg.Serial.Baud
	}
	return monitor.NewSerial(port, baud, 0)
}
