package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	recordCmd.Flags().StringVarP(&recordOpts.Output, "output", "o", "", "CSV file, overrides the config")
	recordCmd.Flags().StringVarP(&recordOpts.Port, "port", "p", "", "serial port, overrides the config")
	recordCmd.Flags().IntVarP(&recordOpts.Baud, "baud", "b", 0, "baud rate, overrides the config")
	recordCmd.Flags().BoolVarP(&recordOpts.Mock, "mock", "m", false, "use the synthetic instrument")
	rootCmd.AddCommand(recordCmd)
}

var (
	recordCmd = &cobra.Command{
		Use:   "record",
		Short: "Record telemetry to a CSV file until interrupted",
		RunE:  record,
	}
	recordOpts = struct {
		Output string
		Port   string
		Baud   int
		Mock   bool
	}{}
)

var csvHeader = []string{"time", "target_ma", "ma", "min_v", "v", "w", "mosfet_c", "resistor_c", "enabled"}

func record(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := recordOpts.Output
	if path == "" {
		path = cfg.Record.Path
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	dev := newInstrument(cfg, recordOpts.Mock, recordOpts.Port, recordOpts.Baud)
	if err := dev.Connect(); err != nil {
		return err
	}
	defer dev.Close()

	sigdone := make(chan os.Signal, 1)
	signal.Notify(sigdone, os.Interrupt)
	defer signal.Stop(sigdone)

	count := 0
	for {
		select {
		case s, ok := <-dev.Samples():
			if !ok {
				fmt.Printf("recorded %d samples to %s\n", count, path)
				return nil
			}
			enabled := "0"
			if s.LoadEnabled {
				enabled = "1"
			}
			row := []string{
				s.At.Format(time.RFC3339),
				strconv.Itoa(int(s.TargetMilliAmps)),
				strconv.FormatFloat(float64(s.MilliAmps), 'f', 0, 32),
				strconv.FormatFloat(float64(s.MinVolts), 'f', 1, 32),
				strconv.FormatFloat(float64(s.Volts), 'f', 2, 32),
				strconv.FormatFloat(float64(s.Watts), 'f', 2, 32),
				strconv.FormatFloat(float64(s.MosfetTempC), 'f', 1, 32),
				strconv.FormatFloat(float64(s.ResistorTempC), 'f', 1, 32),
				enabled,
			}
			if err := w.Write(row); err != nil {
				return err
			}
			// Flush per sample so an interrupted session keeps everything
			// seen so far. At 1 Hz the cost is irrelevant.
			w.Flush()
			if err := w.Error(); err != nil {
				return err
			}
			count++
		case <-sigdone:
			fmt.Printf("recorded %d samples to %s\n", count, path)
			return nil
		}
	}
}
