package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tmasc/networth"
	"github.com/tmasc/networth/agent"
	"google.golang.org/genai"
)

type commentCmd struct {
	member string
}

func (*commentCmd) Name() string     { return "comment" }
func (*commentCmd) Synopsis() string { return "generate an AI commentary on the recent snapshots" }
func (*commentCmd) Usage() string {
	return `nwt comment [-member <name>]

  Sends the digest of the last snapshots to the generative commentary
  service and prints its take on the trend. Requires the GEMINI_API_KEY
  environment variable.
`
}

func (c *commentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.member, "member", networth.All, "Family member to comment on ('All' for everyone)")
}

func (c *commentCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStoreFile()
	if err != nil {
		return fail(err)
	}
	rates, err := AppRates()
	if err != nil {
		return fail(err)
	}

	summary := networth.NewSummary(store.Snapshots, networth.Filter{Member: c.member}, rates)
	if len(summary.Entries) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to comment on: the store has no matching snapshots.")
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	commentator := agent.NewCommentator()
	if err := commentator.Start(ctx, client); err != nil {
		return fail(err)
	}
	text, err := commentator.Comment(ctx, summary)
	if err != nil {
		return fail(err)
	}

	printMarkdown(text)
	return subcommands.ExitSuccess
}
