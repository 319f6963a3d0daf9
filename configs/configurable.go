package configs

import "reflect"

// Configurable marks dependency types whose values may come from config files.
// ConfigExpr returns the expression naming the value in config sources.
type Configurable interface {
	ConfigExpr() string
}

var configurableType = reflect.TypeFor[Configurable]()
