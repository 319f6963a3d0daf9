package cmds

import (
	"fmt"
	"reflect"
)

// Command is one executable word of the command line: a function
// invoked with the words that follow it, a group of sub commands
// spliced into scope, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

var errorType = reflect.TypeFor[error]()

// Func wraps fn as a command. fn may take arguments, which Execute
// fills from the following words, and may return an error and
// nothing else.
func Func(fn any) *Command {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	t := value.Type()
	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) != errorType {
			panic(fmt.Errorf("must return error"))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	return &Command{
		Func: value,
	}
}

// Sub groups commands under a parent word.
func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}
