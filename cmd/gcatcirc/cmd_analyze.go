package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/informatik-mannheim/gcatcirc/circular"
	"github.com/informatik-mannheim/gcatcirc/sardinas"
)

// runAnalyze is the CLI handler for "gcatcirc analyze". It prints one
// line per property, in implication order.
func runAnalyze(cmd *cobra.Command, args []string) error {
	c, err := loadCode(args)
	if err != nil {
		return err
	}
	log.Debug("code loaded", "id", c.ID, "words", len(c.Words()), "alphabet", len(c.Alphabet()))

	isCode, ambiguous := sardinas.AmbiguousSequences(c)

	fmt.Println(c)
	fmt.Printf("code:              %t\n", isCode)
	fmt.Printf("circular:          %t\n", circular.IsCircular(c))
	fmt.Printf("comma free:        %t\n", circular.IsCommaFree(c))
	fmt.Printf("strong comma free: %t\n", circular.IsStrongCommaFree(c))

	if k := circular.ExactKCircular(c); k == circular.KUnbounded {
		fmt.Println("exact k:           unbounded")
	} else {
		fmt.Printf("exact k:           %d\n", k)
	}
	fmt.Printf("Cn circular:       %t\n", circular.IsCnCircular(c))

	for _, s := range ambiguous {
		fmt.Printf("ambiguous:         %s\n", s)
	}

	return nil
}
