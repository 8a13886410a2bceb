package shell

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/HanHongChen/cnsim-ctl/constant"
	"github.com/HanHongChen/cnsim-ctl/logger"
	"github.com/HanHongChen/cnsim-ctl/profile"
	"github.com/HanHongChen/cnsim-ctl/simulator"
	"github.com/chzyer/readline"
)

type Shell struct {
	session *Session

	commands []command
	handlers map[string]handlerFunc

	*logger.CliLogger
}

func NewShell(registry *profile.Registry, client *simulator.Client, out io.Writer, loopInterval time.Duration, cliLogger *logger.CliLogger) *Shell {
	sh := &Shell{
		session: newSession(registry, client, out, loopInterval),

		commands: commandTable(),
		handlers: make(map[string]handlerFunc),

		CliLogger: cliLogger,
	}

	sh.commands = append(sh.commands, command{
		name:    "help",
		usage:   "help [command]",
		doc:     "List available commands or show help for one",
		handler: sh.help,
	})
	for _, cmd := range sh.commands {
		sh.handlers[cmd.name] = cmd.handler
	}
	sh.handlers["?"] = sh.help

	return sh
}

// Run reads and executes commands until exit, end of input or ctx is done.
func (sh *Shell) Run(ctx context.Context, reader LineReader) error {
	sh.ShellLog.Infof("Shell started with profile %q against %s", sh.session.registry.CurrentName(), sh.session.client.BaseUrl())
	sh.session.println(constant.SHELL_INTRO)
	sh.session.println()

	for ctx.Err() == nil {
		line, err := reader.ReadLine()
		if errors.Is(err, ErrInterrupted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			sh.session.println()
			exitShell(ctx, sh.session, "")
			break
		}
		if err != nil {
			sh.ShellLog.Errorf("Failed to read input: %v", err)
			return err
		}

		if sh.Execute(ctx, line) {
			break
		}
	}

	sh.ShellLog.Infoln("Shell stopped")
	return nil
}

// Execute runs one input line and reports whether the shell should stop.
func (sh *Shell) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	name, arg := splitCommand(line)
	handler, ok := sh.handlers[name]
	if !ok {
		sh.ShellLog.Debugf("Unknown command: %s", line)
		sh.session.printf("Unknown command: %s. Type 'help'.\n", line)
		return false
	}

	sh.ShellLog.Debugf("Executing %s", name)
	return handler(ctx, sh.session, arg)
}

func splitCommand(line string) (string, string) {
	index := strings.IndexFunc(line, unicode.IsSpace)
	if index < 0 {
		return line, ""
	}
	return line[:index], strings.TrimSpace(line[index:])
}

func (sh *Shell) help(_ context.Context, s *Session, arg string) bool {
	if arg != "" {
		for _, cmd := range sh.commands {
			if cmd.name == arg {
				s.printf("%s\n  %s\n", cmd.usage, cmd.doc)
				return false
			}
		}
		s.printf("*** No help on %s\n", arg)
		return false
	}

	s.println("Documented commands (type help <topic>):")
	for _, cmd := range sh.commands {
		s.printf("  %-16s %s\n", cmd.usage, cmd.doc)
	}
	return false
}

// Completer completes command names, and profile names after switch.
func (sh *Shell) Completer() readline.AutoCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(sh.commands))
	for _, cmd := range sh.commands {
		switch cmd.name {
		case "switch":
			items = append(items, readline.PcItem(cmd.name, readline.PcItemDynamic(func(string) []string {
				return sh.session.registry.Names()
			})))
		case "help":
			topics := make([]readline.PrefixCompleterInterface, 0, len(sh.commands))
			for _, topic := range sh.commands {
				topics = append(topics, readline.PcItem(topic.name))
			}
			items = append(items, readline.PcItem(cmd.name, topics...))
		default:
			items = append(items, readline.PcItem(cmd.name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}
