package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stigoleg/timefield/internal/cli"
)

// This small tool generates shell completions and a man page from the
// flags of the root command.

func main() {
	root := cli.NewRootCmd("dev")

	if err := writeCompletions(root, filepath.Join("docs", "completions")); err != nil {
		panic(err)
	}
	if err := writeMan(root, "man"); err != nil {
		panic(err)
	}
}

func writeCompletions(root *cobra.Command, base string) error {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return err
	}

	name := root.Name()
	if err := root.GenBashCompletionFileV2(filepath.Join(base, name+".bash"), true); err != nil {
		return err
	}
	if err := root.GenZshCompletionFile(filepath.Join(base, "_"+name)); err != nil {
		return err
	}
	return root.GenFishCompletionFile(filepath.Join(base, name+".fish"), true)
}

func writeMan(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, root.Name()+".1"), []byte(manPage(root)), 0o644)
}

func manPage(root *cobra.Command) string {
	name := root.Name()

	var b strings.Builder
	b.WriteString(".TH \"" + strings.ToUpper(name) + "\" \"1\" \"\" \"" + name + "\" \"User Commands\"\n")
	b.WriteString(".SH NAME\n" + name + " \\- " + roffEscape(root.Short) + "\n")
	b.WriteString(".SH SYNOPSIS\n.B " + name + "\n[OPTIONS]\n")
	b.WriteString(".SH DESCRIPTION\n" + roffEscape(root.Long) + "\n")
	b.WriteString(".SH OPTIONS\n")

	root.InitDefaultHelpFlag()
	root.InitDefaultVersionFlag()
	root.Flags().VisitAll(func(f *pflag.Flag) {
		names := "\\-\\-" + f.Name
		if f.Shorthand != "" {
			names = "\\-" + f.Shorthand + ", " + names
		}
		if f.Value.Type() != "bool" {
			names += " <" + f.Value.Type() + ">"
		}
		b.WriteString(".TP\n\\fB" + names + "\\fR\n" + roffEscape(f.Usage) + "\n")
	})

	b.WriteString(".SH EXAMPLES\n.nf\n" + roffEscape(root.Example) + "\n.fi\n")
	b.WriteString(".SH EXIT STATUS\n0 when a value was submitted, 1 otherwise.\n")
	return b.String()
}

func roffEscape(s string) string {
	return strings.ReplaceAll(s, "-", "\\-")
}
