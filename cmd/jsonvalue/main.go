package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"

	"github.com/cybergodev/jsonvalue"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		exitWithErr(err)
	}
}

// globals holds the state shared by every command
type globals struct {
	configFile string
	logLevel   string

	stdin  io.Reader
	out    io.Writer
	errOut io.Writer

	logger *slog.Logger
	codec  *jsonvalue.Codec
}

func newApp(out, errOut io.Writer) *kingpin.Application {
	g := &globals{stdin: os.Stdin, out: out, errOut: errOut}

	app := kingpin.New("jsonvalue", "Inspect JSON documents.")
	app.HelpFlag.Short('h')
	app.Flag("config.file", "YAML file with the codec configuration.").StringVar(&g.configFile)
	app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("warn").EnumVar(&g.logLevel, "debug", "info", "warn", "error")
	app.PreAction(g.setup)

	addGetCommand(app, g)
	addKeysCommand(app, g)
	addStringsCommand(app, g)
	addCompactCommand(app, g)
	return app
}

// setup builds the logger and codec once flags are parsed
func (g *globals) setup(_ *kingpin.ParseContext) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	g.logger = slog.New(slog.NewTextHandler(g.errOut, &slog.HandlerOptions{Level: level}))

	config := jsonvalue.DefaultConfig()
	if g.configFile != "" {
		loaded, err := jsonvalue.LoadConfig(g.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		config = loaded
	}
	g.codec = jsonvalue.NewCodec(config)
	g.codec.SetLogger(g.logger)

	g.logger.Debug("codec ready",
		"max_json_size", config.MaxJSONSize,
		"max_nesting_depth", config.MaxNestingDepth)
	return nil
}

// read returns the content of name, stdin when name is "-"
func (g *globals) read(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(g.stdin)
	}
	return os.ReadFile(name)
}

// load parses the document in name
func (g *globals) load(name string) (*jsonvalue.Value, []byte, error) {
	data, err := g.read(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	v, err := g.codec.ParseBytes(data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return v, data, nil
}

// target returns the member under key as its own handle, or a clone of v
// when key is empty
func target(v *jsonvalue.Value, key string) (*jsonvalue.Value, error) {
	if key == "" {
		return v.Clone(), nil
	}
	return v.GetObject(key)
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
	os.Exit(1)
}
