package notifier

import (
	"fmt"
	"io"

	"github.com/khendrix/atltech/internal/catalog"
)

// DryRunNotifier prints what would be posted without posting anything.
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to out.
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints the tweets that would be posted.
func (n *DryRunNotifier) Notify(entries []*catalog.Entry) error {
	for i, entry := range entries {
		tweet := formatTweet(entry)
		fmt.Fprintf(n.out, "--- Tweet %d/%d ---\n", i+1, len(entries))
		fmt.Fprintln(n.out, tweet)
		fmt.Fprintf(n.out, "\n(Length: %d characters)\n\n", len(tweet))
	}
	return nil
}
