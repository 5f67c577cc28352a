// Command gazegrid inspects gaze asset grids: it lists the files a complete
// asset set needs, resolves pointer positions to asset paths, decodes asset
// names, and replays scripted input against a configured layout.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
