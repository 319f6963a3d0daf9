package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/pane/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	for _, def := range []struct {
		name  string
		level slog.Level
	}{
		{"-log-debug", slog.LevelDebug},
		{"-log-info", slog.LevelInfo},
		{"-log-warn", slog.LevelWarn},
		{"-log-error", slog.LevelError},
	} {
		cmds.Define(def.name, cmds.Func(func() {
			level.Set(def.level)
		}).Desc("set log level to "+strings.TrimPrefix(def.name, "-log-")))
	}
}

type Logger = *slog.Logger

// Logger fans out to a text handler on Writer and, when available, the
// systemd journal. Under a systemd service the text handler is dropped
// since stderr already lands in the journal.
func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	var textHandler slog.Handler
	if !runsAsSystemdService() {
		textHandler = slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		})
		handlers = append(handlers, textHandler)
	}

	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err == nil {
		handlers = append(handlers, journalHandler)
	} else if textHandler != nil {
		record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
		record.Add("error", err)
		_ = textHandler.Handle(context.Background(), record)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

// journal field names are uppercase with underscores
func toJournalKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, key)
}

func runsAsSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.SplitN(string(content), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
