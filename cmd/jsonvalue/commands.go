package main

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/cybergodev/jsonvalue"
)

// getCommand prints one member of a document converted to a type.
type getCommand struct {
	g     *globals
	file  string
	key   string
	typ   string
	radix int
}

func addGetCommand(app *kingpin.Application, g *globals) {
	cmd := &getCommand{g: g}
	get := app.Command("get", "Print the member stored under a key.").Action(cmd.run)
	get.Arg("file", "The JSON file to read, - for stdin.").Required().StringVar(&cmd.file)
	get.Arg("key", "The member to print.").Required().StringVar(&cmd.key)
	get.Flag("type", "Type to convert the member to.").
		Default("text").EnumVar(&cmd.typ, "string", "text", "int", "uint", "float", "bool")
	get.Flag("radix", "Base for integer conversion (8, 10 or 16).").Default("10").IntVar(&cmd.radix)
}

func (cmd *getCommand) run(_ *kingpin.ParseContext) error {
	v, _, err := cmd.g.load(cmd.file)
	if err != nil {
		return err
	}
	defer v.Close()

	radix := jsonvalue.Radix(cmd.radix)
	var out string
	switch cmd.typ {
	case "string":
		out, err = v.GetValue(cmd.key)
	case "int":
		var i int64
		i, err = v.GetInt64(cmd.key, radix)
		out = strconv.FormatInt(i, 10)
	case "uint":
		var u uint64
		u, err = v.GetUint64(cmd.key, radix)
		out = strconv.FormatUint(u, 10)
	case "float":
		var f float64
		f, err = v.GetFloat64(cmd.key)
		out = strconv.FormatFloat(f, 'g', -1, 64)
	case "bool":
		var b bool
		b, err = v.GetBool(cmd.key)
		out = strconv.FormatBool(b)
	default:
		out, err = v.GetText(cmd.key)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.g.out, out)
	return err
}

// keysCommand lists the member names of an object.
type keysCommand struct {
	g    *globals
	file string
	key  string
}

func addKeysCommand(app *kingpin.Application, g *globals) {
	cmd := &keysCommand{g: g}
	keys := app.Command("keys", "List the member names of an object.").Action(cmd.run)
	keys.Arg("file", "The JSON file to read, - for stdin.").Required().StringVar(&cmd.file)
	keys.Arg("key", "Nested object to list instead of the root.").StringVar(&cmd.key)
}

func (cmd *keysCommand) run(_ *kingpin.ParseContext) error {
	v, _, err := cmd.g.load(cmd.file)
	if err != nil {
		return err
	}
	defer v.Close()

	obj, err := target(v, cmd.key)
	if err != nil {
		return err
	}
	defer obj.Close()

	keys, err := obj.Keys()
	if err != nil {
		return err
	}
	for _, key := range keys {
		fmt.Fprintln(cmd.g.out, key)
	}
	return nil
}

// stringsCommand prints the distinct strings of an array in sorted order.
type stringsCommand struct {
	g     *globals
	file  string
	key   string
	limit int
}

func addStringsCommand(app *kingpin.Application, g *globals) {
	cmd := &stringsCommand{g: g}
	strs := app.Command("strings", "Print the distinct strings of an array.").Action(cmd.run)
	strs.Arg("file", "The JSON file to read, - for stdin.").Required().StringVar(&cmd.file)
	strs.Arg("key", "Member holding the array; the root when omitted.").StringVar(&cmd.key)
	strs.Flag("limit", "Visit at most this many elements, -1 for all.").
		Default(strconv.Itoa(jsonvalue.DefaultLimit)).IntVar(&cmd.limit)
}

func (cmd *stringsCommand) run(_ *kingpin.ParseContext) error {
	v, _, err := cmd.g.load(cmd.file)
	if err != nil {
		return err
	}
	defer v.Close()

	set := jsonvalue.NewStringSet()
	if err := v.GetStringCollection(cmd.key, set, jsonvalue.LimitFromInt(cmd.limit)); err != nil {
		return err
	}

	color.New(color.Bold).Fprintf(cmd.g.errOut, "%d distinct strings\n", set.Len())
	set.Ascend(func(item string) bool {
		fmt.Fprintln(cmd.g.out, item)
		return true
	})
	return nil
}

// compactCommand rewrites a document without whitespace.
type compactCommand struct {
	g     *globals
	file  string
	stats bool
}

func addCompactCommand(app *kingpin.Application, g *globals) {
	cmd := &compactCommand{g: g}
	compact := app.Command("compact", "Print a document without whitespace.").Action(cmd.run)
	compact.Arg("file", "The JSON file to read, - for stdin.").Required().StringVar(&cmd.file)
	compact.Flag("stats", "Print input and output sizes.").BoolVar(&cmd.stats)
}

func (cmd *compactCommand) run(_ *kingpin.ParseContext) error {
	v, data, err := cmd.g.load(cmd.file)
	if err != nil {
		return err
	}
	defer v.Close()

	buf, err := v.ToBuffer()
	if err != nil {
		return err
	}
	defer buf.Release()

	if _, err := buf.WriteTo(cmd.g.out); err != nil {
		return err
	}
	fmt.Fprintln(cmd.g.out)

	if cmd.stats {
		bold := color.New(color.Bold)
		bold.Fprintln(cmd.g.errOut, "Sizes:")
		fmt.Fprintf(cmd.g.errOut, "\tinput: %v, output: %v\n",
			humanize.Bytes(uint64(len(data))),
			humanize.Bytes(uint64(buf.Len())))
	}
	return nil
}
