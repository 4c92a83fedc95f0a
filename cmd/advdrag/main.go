// Command advdrag runs a draggable, rotatable box in a window, a terminal or
// headless from a JSON script.
package main

import "github.com/coolzilj/advdrag/cmd/advdrag/cmd"

func main() {
	cmd.Execute()
}
