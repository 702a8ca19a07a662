// kurocal is the command-line front end of the Kuro cat calorie calculator.
package main

import (
	"os"

	"github.com/Simplici0/kurocal/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
