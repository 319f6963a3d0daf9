package sessions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pane/attachments"
	"github.com/reusee/pane/generators"
	"github.com/reusee/pane/paneconfigs"
	"github.com/reusee/pane/phases"
	"github.com/reusee/pane/storages"
)

type Module struct {
	dscope.Module
	Generators  generators.Module
	Configs     paneconfigs.Module
	Attachments attachments.Module
	Storages    storages.Module
	Phases      phases.Module
}
