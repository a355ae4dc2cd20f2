package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "fieldcenter",
	Short: "generate center-course coverage patterns for field boundaries",
	Long: `fieldcenter plans an agricultural field's center work:
	- load a field boundary, its headland passes and obstacle islands from OBJ geometry,
	- search the row angle and split the interior into row blocks,
	- sequence and link the blocks with a genetic algorithm,
	- emit the resulting up/down-row polyline.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
