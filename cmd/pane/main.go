package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/modes"
	"github.com/reusee/pane/previews"
	"github.com/reusee/pane/sessions"
	"github.com/reusee/pane/storages"
	"golang.org/x/term"
)

const Theory = `
# One Binary, Two Paces

pane runs at two paces. "generate" is batch: one brief in, one document out, an exit code for scripts. "chat" is a loop: the same generation followed by follow-up turns, with the preview mirroring every streamed byte. Both paces share one session, so a project started in batch continues in chat and back.
`

func main() {
	cmds.Execute(os.Args[1:])

	if action == "" {
		cmds.GlobalExecutor.PrintUsage()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	switch action {

	case actionGenerate, actionChat:
		scope.Call(func(
			logger logs.Logger,
			projectName sessions.ProjectName,
			load sessions.LoadProject,
			generate sessions.Generate,
			server *previews.Server,
		) {
			interactive := action == actionChat

			// continuing a stored project keeps its screens editable
			if interactive && projectName != "" {
				err := load(string(projectName))
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					ce(err)
				}
			}

			if *withPreview {
				go func() {
					if err := server.Run(ctx); err != nil {
						logger.Error("preview",
							"err", err,
						)
					}
				}()
			}

			input := brief
			if stdin := stdinContent(); len(stdin) > 0 {
				input += "\n" + string(stdin)
			}

			ce(generate(ctx, os.Stdout, input, interactive))

			if *withPreview && !interactive {
				logger.Info("serving the result, interrupt to exit")
				<-ctx.Done()
			}
		})

	case actionServe:
		scope.Call(func(
			projectName sessions.ProjectName,
			load sessions.LoadProject,
			server *previews.Server,
		) {
			if projectName != "" {
				ce(load(string(projectName)))
			}
			ce(server.Run(ctx))
		})

	case actionScreens:
		scope.Call(func(
			projectName sessions.ProjectName,
			load sessions.LoadProject,
			session *sessions.Session,
		) {
			if projectName == "" {
				ce(errors.New("no project: pass -project"))
			}
			ce(load(string(projectName)))
			for _, screen := range session.Screens() {
				root := ""
				if screen.Root {
					root = "  root"
				}
				pt("%s  [%d,%d]  %d bytes%s\n",
					screen.ID,
					screen.GridColumn,
					screen.GridRow,
					len(screen.Markup),
					root,
				)
			}
			for _, anomaly := range session.Anomalies() {
				pt("anomaly: %s  %s\n",
					anomaly.Kind,
					anomaly.Screen,
				)
			}
		})

	case actionProjects:
		scope.Call(func(
			store storages.Store,
		) {
			projects, err := store.List()
			ce(err)
			for _, project := range projects {
				pt("%s\n", project)
			}
		})

	}

}

func stdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}
