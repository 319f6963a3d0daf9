package generators

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/debugs"
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/nets"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Nets    nets.Module
	Logs    logs.Module
	Debugs  debugs.Module
}
