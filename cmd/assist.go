package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fondlista/funds"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.5-pro"

// assistCmd asks Gemini to comment on the current dataset.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "AI commentary on the current fund dataset" }
func (*assistCmd) Usage() string {
	return `fondsync assist [question]

  Sends the current output document to Gemini and prints a short
  commentary: cheapest funds per market, fee spread, anything notable.
  An optional question focuses the answer.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := "Summarize the dataset: cheapest funds per market, the fee spread, and anything notable."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	doc, err := funds.ReadDocument(cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (run 'fondsync update' first)\n", err)
		return subcommands.ExitFailure
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error encoding document:", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
		You comment on a JSON dataset of index funds for two markets, global
		and sweden, sorted ascending by annual fee. Fees and returns are
		percentage strings, "N/A" means no data. Answer briefly, in the
		language of the question, using markdown.
	`}}},
	}
	chat, err := client.Chats.Create(ctx, assistModel, config, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	prompt := question + "\n\n```json\n" + string(raw) + "\n```"
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error from Gemini:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "Empty response from Gemini")
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
