package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func init() {
	watchCmd.Flags().StringVarP(&watchOpts.Port, "port", "p", "", "serial port, overrides the config")
	watchCmd.Flags().IntVarP(&watchOpts.Baud, "baud", "b", 0, "baud rate, overrides the config")
	watchCmd.Flags().BoolVarP(&watchOpts.Mock, "mock", "m", false, "use the synthetic instrument")
	rootCmd.AddCommand(watchCmd)
}

var (
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Stream live telemetry to stdout",
		RunE:  watch,
	}
	watchOpts = struct {
		Port string
		Baud int
		Mock bool
	}{}
)

func watch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dev := newInstrument(cfg, watchOpts.Mock, watchOpts.Port, watchOpts.Baud)
	if err := dev.Connect(); err != nil {
		return err
	}
	defer dev.Close()

	sigdone := make(chan os.Signal, 1)
	signal.Notify(sigdone, os.Interrupt)
	defer signal.Stop(sigdone)

	fmt.Println("time     target    mA   minV      V      W  mosC  resC  on")
	for {
		select {
		case s, ok := <-dev.Samples():
			if !ok {
				return nil
			}
			on := 0
			if s.LoadEnabled {
				on = 1
			}
			fmt.Printf("%s %6d %5.0f %6.1f %6.2f %6.2f %5.1f %5.1f %3d\n",
				s.At.Format("15:04:05"), s.TargetMilliAmps, s.MilliAmps,
				s.MinVolts, s.Volts, s.Watts, s.MosfetTempC, s.ResistorTempC, on)
		case <-sigdone:
			return nil
		}
	}
}
