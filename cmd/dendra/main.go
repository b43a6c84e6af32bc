// Command dendra is the pipeline front end: parse cluster-map files, build
// labeled distance matrices, agglomerate them into group trees, embed them
// back into coordinates. See each subcommand's help for its stage.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
