package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"emergency-triage/internal/model"
)

func newChatCmd(get func() *engines) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the classifier one line at a time",
		Long:  "Reads messages from stdin and threads the conversation state through the classifier. An empty line or EOF ends the chat.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(get(), cmd.InOrStdin(), cmd.OutOrStdout(), verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the state after every turn")
	return cmd
}

func runChat(eng *engines, in io.Reader, out io.Writer, verbose bool) error {
	state := model.NewConversationState()
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Describe your emergency (empty line to quit).")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		d := eng.router.Decide(line, state)
		state = d.State

		fmt.Fprintln(out, d.Reply.Content)
		if d.Reply.IsNavigation() {
			fmt.Fprintf(out, "-> %s\n", d.Reply.Target)
		}
		if verbose {
			fmt.Fprintf(out, "[%s step=%s trade=%s city=%s]\n",
				d.Outcome, state.Step, state.DetectedTrade, state.DetectedCity)
		}
		if state.Step == model.StepRouting && d.Reply.IsNavigation() {
			break
		}
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
