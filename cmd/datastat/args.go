package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/datastat/internal/input"
)

// numericArgs rewrites args so that negative numbers such as -5 reach the
// command as data instead of being parsed as shorthand flags. Flags keep
// their position in front of a "--" terminator and the data follows it in
// its original order. args is returned unchanged when it already holds a
// terminator or has no negative number outside a flag value.
func numericArgs(root *cobra.Command, args []string) []string {
	for _, arg := range args {
		if arg == "--" {
			return args
		}
	}

	cmd, _, err := root.Find(args)
	if err != nil {
		return args
	}

	var flags, positional []string
	negative := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case isNumeric(arg):
			negative = negative || strings.HasPrefix(arg, "-")
			positional = append(positional, arg)
		case len(arg) > 1 && strings.HasPrefix(arg, "-"):
			flags = append(flags, arg)
			if takesValue(cmd, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}
	if !negative {
		return args
	}

	path := commandPath(root, cmd)
	if len(positional) < len(path) {
		return args
	}
	for i, name := range path {
		if positional[i] != name {
			return args
		}
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, path...)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional[len(path):]...)
}

func isNumeric(arg string) bool {
	values, err := input.ParseArgs([]string{arg})
	return err == nil && len(values) > 0
}

// takesValue reports whether arg names a flag of cmd that consumes the
// following argument.
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var find func(*pflag.FlagSet) *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		find = func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) }
	} else if len(arg) == 2 {
		find = func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(arg[1:]) }
	} else {
		return false
	}

	f := find(cmd.Flags())
	for c := cmd; f == nil && c != nil; c = c.Parent() {
		f = find(c.PersistentFlags())
	}
	return f != nil && f.NoOptDefVal == ""
}

// commandPath lists the subcommand names leading from root to cmd.
func commandPath(root, cmd *cobra.Command) []string {
	var path []string
	for c := cmd; c != nil && c != root; c = c.Parent() {
		path = append([]string{c.Name()}, path...)
	}
	return path
}
