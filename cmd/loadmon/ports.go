package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itohio/dcload/pkg/monitor"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List serial ports",
	RunE:  ports,
}

func ports(cmd *cobra.Command, args []string) error {
	names, err := monitor.Ports()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("no serial ports found")
		return nil
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
