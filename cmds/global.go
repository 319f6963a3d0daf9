package cmds

// GlobalExecutor holds the process-wide command set. Package level
// Var, Switch and Collect register here.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) {
	GlobalExecutor.MustExecute(args)
}
