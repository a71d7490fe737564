// Command projectassist runs the project documentation assistant wizard.
package main

import "github.com/diogo/projectassist/internal/commands"

func main() {
	commands.Execute()
}
