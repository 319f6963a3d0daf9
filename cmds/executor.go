package cmds

import (
	"fmt"
	"maps"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/reusee/pane/vars"
)

// Executor maps words to commands. Execution is a plain left-to-right
// scan: every word names a command, a command may consume the words
// after it as arguments, and a Sub command splices its children into
// the visible set for the rest of the line.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	executor := &Executor{
		commands: make(map[string]*Command),
	}
	executor.Define("-h", Func(func() {
		executor.PrintUsage()
		os.Exit(0)
	}).
		Desc("print this usage").
		Alias("help", "-help", "--help"))
	return executor
}

func (e *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		e.commands[n] = command
	}
}

func (e *Executor) Execute(args []string) error {
	visible := e.commands

	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := visible[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		if command.Func.IsValid() {
			rest, err := call(command.Func, args)
			if err != nil {
				return err
			}
			args = rest
		}

		if len(command.Subs) > 0 {
			visible = maps.Clone(visible)
			for sub, cmd := range command.Subs {
				if _, ok := visible[sub]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, sub)
				}
				visible[sub] = cmd
			}
		}
	}

	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}

// call converts leading args to fn's parameter types and invokes it,
// returning the words left over.
func call(fn reflect.Value, args []string) ([]string, error) {
	t := fn.Type()
	callArgs := make([]reflect.Value, 0, t.NumIn())
	for i := range t.NumIn() {
		value, err := convertArg(t.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}
	rets := fn.Call(callArgs)
	if len(rets) == 1 && !rets[0].IsNil() {
		return nil, rets[0].Interface().(error)
	}
	return args, nil
}

func convertArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			// optional, use zero value
			return reflect.New(t.Elem()), nil
		}
		elem, err := convertArg(t.Elem(), args)
		if err != nil {
			return reflect.Value{}, err
		}
		return elem.Addr(), nil
	}

	if len(args) == 0 {
		return reflect.Value{}, fmt.Errorf("expecting argument, got nothing")
	}
	word := args[0]
	value := reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.String:
		value.SetString(word)

	case reflect.Bool:
		value.SetBool(vars.StrToBool(word))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(word, 10, 64)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %s to int: %w", word, err)
		}
		value.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(word, 10, 64)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %s to unsigned int: %w", word, err)
		}
		value.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %s to float: %w", word, err)
		}
		value.SetFloat(n)

	default:
		return reflect.Value{}, fmt.Errorf("unsupported type: %v", t)
	}

	return value, nil
}
