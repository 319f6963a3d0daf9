package paneconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
