// Package ecli is a small command-line argument parser.
//
// A program declares its options once, in order, on an OptionSet and then
// parses its argument vector. Options are matched by name prefix in the forms
//
//	--name value
//	--name=value
//	--name            (flags, or a value option given as the last token)
//
// Every token that matches no option is positional, the program name included.
// The literal token --help stops parsing and is reported as ErrHelpRequested,
// leaving the caller to print Help and exit.
//
// Usage:
//
//	set := ecli.NewOptionSet(ecli.WithIntro("Small program to output some greetings."))
//	hello := set.Value("--hello", "Greets the given name.")
//	french := set.Flag("--french", "Greets in French.")
//
//	positionals, err := set.Parse(os.Args)
//	if errors.Is(err, ecli.ErrHelpRequested) {
//		fmt.Print(set.Help())
//		os.Exit(0)
//	}
//
//	if name, ok := hello.Value(); ok && french.IsSet() {
//		fmt.Printf("Bonjour, %s!\n", name)
//	}
//	for _, arg := range positionals {
//		fmt.Println(arg)
//	}
package ecli
