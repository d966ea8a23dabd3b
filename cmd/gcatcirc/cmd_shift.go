package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// runShift is the CLI handler for "gcatcirc shift". It rotates every
// word of the code by --by positions and prints the result.
func runShift(cmd *cobra.Command, args []string) error {
	c, err := loadCode(args)
	if err != nil {
		return err
	}
	log.Debug("shifting code", "id", c.ID, "by", flagShiftBy)

	c.Shift(flagShiftBy)
	fmt.Println(c)

	return nil
}
