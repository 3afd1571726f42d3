package main

import (
	"fmt"
	"os"
	"strings"

	"microbench_go/config"
	"microbench_go/profile"
	"microbench_go/suite"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Microbench - Custom Help Menu
Usage:
  microbench <tool> [options]

Tools:
  run			Run the benchmark suite, printing one
			"<harness>,<name>,<milliseconds>" line per benchmark
  check			Run every kernel's correctness check once, no timing
  list			Print the benchmarks eligible on this platform

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Microbench - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tMicrobench:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular components:\n")
	fmt.Printf("\tHarness:\t\t%s\n", config.Harness)
	fmt.Printf("\tKernel Library:\t\t%s\n", config.Kernels)
	fmt.Printf("\tSuite Registry:\t\t%s\n", config.Suite)
	fmt.Printf("\tReport:\t\t\t%s\n", config.Report)
	fmt.Printf("\tProfile:\t\t%s\n", config.Profile)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	for _, arg := range os.Args[1:] {
		if len(os.Args) < 3 {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	opts := config.SplitArgs(os.Args[1:])

	// Tool execution wrapper
	run := func() {
		switch opts.Tool {
		case "run":
			suite.Run(opts.Args)
		case "check":
			suite.Check(opts.Args)
		case "list":
			suite.List(opts.Args)
		default:
			fmt.Printf("Unknown tool: %s\n", opts.Tool)
			os.Exit(1)
		}
	}

	if opts.Profile {
		label := fmt.Sprintf("microbench %s %s", opts.Tool, strings.Join(opts.Args, " "))
		profile.Run(label, os.Stderr, run)
	} else {
		run()
	}
}
