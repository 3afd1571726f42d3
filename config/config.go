package config // CLI configuration file

// Tool + flags shared by every tool invocation
type Options struct {
	Tool    string
	Profile bool
	Args    []string
}

// SplitArgs separates the tool name and the global -benchmark flag from the
// arguments handed down to the tool itself.
func SplitArgs(args []string) Options {
	opts := Options{}
	if len(args) == 0 {
		return opts
	}
	opts.Tool = args[0]
	for _, arg := range args[1:] {
		if arg == "-benchmark" {
			opts.Profile = true
		} else {
			opts.Args = append(opts.Args, arg)
		}
	}
	return opts
}
