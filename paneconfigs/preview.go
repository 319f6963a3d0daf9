package paneconfigs

import (
	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/vars"
)

type PreviewAddr string

var _ configs.Configurable = PreviewAddr("")

func (p PreviewAddr) ConfigExpr() string {
	return "preview_addr"
}

var previewAddrFlag = cmds.Var[string]("-preview-addr")

func (Module) PreviewAddr(
	loader configs.Loader,
) PreviewAddr {
	return vars.FirstNonZero(
		PreviewAddr(*previewAddrFlag),
		configs.First[PreviewAddr](loader, "preview_addr"),
		PreviewAddr("127.0.0.1:7263"),
	)
}

type HotspotsEnabled bool

var _ configs.Configurable = HotspotsEnabled(false)

func (h HotspotsEnabled) ConfigExpr() string {
	return "hotspots"
}

var hotspotsFlag = cmds.Switch("-hotspots")

func (Module) HotspotsEnabled(
	loader configs.Loader,
) HotspotsEnabled {
	return vars.FirstNonZero(
		HotspotsEnabled(*hotspotsFlag),
		configs.First[HotspotsEnabled](loader, "hotspots"),
	)
}
