package main

import (
	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/vars"
)

const (
	actionGenerate = "generate"
	actionChat     = "chat"
	actionServe    = "serve"
	actionScreens  = "screens"
	actionProjects = "projects"
)

var (
	action string
	brief  string
)

var withPreview = cmds.Switch("-preview")

func init() {

	cmds.Define(actionGenerate, cmds.Func(func(text string) {
		action = actionGenerate
		brief = text
	}).Desc("produce a prototype from a brief, then exit"))

	cmds.Define(actionChat, cmds.Func(func(text *string) {
		action = actionChat
		brief = vars.DerefOrZero(text)
	}).Desc("produce a prototype and keep iterating on it"))

	cmds.Define(actionServe, cmds.Func(func() {
		action = actionServe
	}).Desc("serve the preview for a stored project"))

	cmds.Define(actionScreens, cmds.Func(func() {
		action = actionScreens
	}).Desc("list the screens of a stored project"))

	cmds.Define(actionProjects, cmds.Func(func() {
		action = actionProjects
	}).Desc("list stored projects"))

}
