package main

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/grids"
	"github.com/reusee/pane/protocols"
	"github.com/reusee/pane/prototypes"
	"github.com/reusee/pane/screens"
	"github.com/reusee/pane/vars"
)

var (
	inputPath   = cmds.Var[string]("-i")
	outputPath  = cmds.Var[string]("-o")
	profileName = cmds.Var[string]("-profile")
	projectName = cmds.Var[string]("-project")
	canvas      = cmds.Switch("-canvas")
)

func main() {
	cmds.Execute(os.Args[1:])

	var input io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}
		defer f.Close()
		input = f
	}

	content, err := io.ReadAll(input)
	if err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}

	result := protocols.Parse(string(content))
	registry := screens.NewRegistry()
	registry.Rebuild(result)

	profile, ok := grids.Profiles[vars.FirstNonZero(*profileName, "compact")]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown profile: %s\n", *profileName)
		os.Exit(-1)
	}

	name := vars.FirstNonZero(*projectName, result.Name)

	var document string
	if *canvas {
		document = prototypes.Canvas(registry.All(), profile, name)
	} else {
		document = prototypes.Assemble(registry.All(), profile, name)
	}

	output := os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			os.Stderr.WriteString(err.Error())
			os.Stderr.WriteString("\n")
			os.Exit(-1)
		}
		defer f.Close()
		output = f
	}
	if _, err := output.WriteString(document); err != nil {
		os.Stderr.WriteString(err.Error())
		os.Stderr.WriteString("\n")
		os.Exit(-1)
	}

	for _, anomaly := range result.Anomalies {
		fmt.Fprintf(os.Stderr, "anomaly: %s  %s\n",
			anomaly.Kind,
			anomaly.Screen,
		)
	}
}
