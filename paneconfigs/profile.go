package paneconfigs

import (
	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/grids"
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/vars"
)

type DeviceProfileName string

var _ configs.Configurable = DeviceProfileName("")

func (d DeviceProfileName) ConfigExpr() string {
	return "profile"
}

var profileFlag = cmds.Var[string]("-profile")

func (Module) DeviceProfileName(
	loader configs.Loader,
) DeviceProfileName {
	return vars.FirstNonZero(
		DeviceProfileName(*profileFlag),
		configs.First[DeviceProfileName](loader, "profile"),
		DeviceProfileName("compact"),
	)
}

func (Module) DeviceProfile(
	name DeviceProfileName,
	logger logs.Logger,
) grids.Profile {
	profile, ok := grids.Profiles[string(name)]
	if !ok {
		logger.Warn("unknown device profile, using compact",
			"profile", string(name),
		)
		return grids.Compact
	}
	return profile
}
