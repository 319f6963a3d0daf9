package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage() {
	e.writeCommands(os.Stdout, "", e.commands)
}

func (e *Executor) writeCommands(w io.Writer, indent string, commands map[string]*Command) {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] {
			continue
		}
		seen[command] = true

		fmt.Fprint(w, indent, name)
		if len(command.Aliases) > 0 {
			fmt.Fprintf(w, " (%s)", strings.Join(command.Aliases, ", "))
		}
		fmt.Fprintln(w)
		if command.Description != "" {
			fmt.Fprintf(w, "%s  %s\n", indent, command.Description)
		}

		if len(command.Subs) > 0 {
			e.writeCommands(w, indent+"  ", command.Subs)
		}
	}
}
