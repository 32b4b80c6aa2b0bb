// Command timon runs programs written in a small imperative language
// specialized in calendar and temporal arithmetic.
package main

import "github.com/spietras/timon-interpreter/cmd/timon/cmd"

func main() {
	cmd.Execute()
}
