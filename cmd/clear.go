package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "erase the store" }
func (*clearCmd) Usage() string {
	return `nwt clear [-f]

  Erases the store file. Asks for confirmation and only proceeds on a
  literal 'yes'. -f skips the confirmation.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Skip the confirmation prompt")
}

func (c *clearCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Printf("This erases %s. Type 'yes' to confirm: ", *storeFile)
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil || strings.TrimSpace(line) != "yes" {
			fmt.Println("Aborted.")
			return subcommands.ExitFailure
		}
	}

	if err := os.Remove(*storeFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Println("Store is already empty.")
			return subcommands.ExitSuccess
		}
		return fail(err)
	}
	fmt.Printf("Erased %s.\n", *storeFile)
	return subcommands.ExitSuccess
}
