package notifier

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"

	"github.com/khendrix/atltech/internal/catalog"
)

// tweetLimit is Twitter's character cap.
const tweetLimit = 280

// categoryLabels are the human-readable category names used in tweets.
var categoryLabels = map[catalog.Category]string{
	catalog.CategoryMeetup:         "Meetup",
	catalog.CategoryConference:     "Conference",
	catalog.CategoryOnlineResource: "Online Resource",
	catalog.CategoryTechHub:        "Tech Hub",
}

// TwitterNotifier posts new listings to Twitter.
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a Twitter notifier from environment variables:
// TWITTER_API_KEY, TWITTER_API_SECRET, TWITTER_ACCESS_TOKEN,
// TWITTER_ACCESS_SECRET.
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)

	return &TwitterNotifier{client: twitter.NewClient(httpClient)}, nil
}

// Notify posts one tweet per entry, sleeping between posts to stay under
// rate limits.
func (n *TwitterNotifier) Notify(entries []*catalog.Entry) error {
	for i, entry := range entries {
		tweet := formatTweet(entry)

		_, _, err := n.client.Statuses.Update(tweet, nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet for entry %s: %w", entry.ID, err)
		}

		if i < len(entries)-1 {
			time.Sleep(2 * time.Second)
		}
	}

	return nil
}

// formatTweet renders a catalog entry as a tweet.
func formatTweet(entry *catalog.Entry) string {
	label := categoryLabels[entry.Type]
	if label == "" {
		label = string(entry.Type)
	}

	tweet := fmt.Sprintf("New in the Atlanta tech directory!\n\n%s: %s\n", label, entry.Name)

	if entry.ConferenceDate != "" {
		tweet += fmt.Sprintf("When: %s\n", entry.ConferenceDate)
	}
	if len(entry.Tags) > 0 {
		tweet += strings.Join(entry.Tags, " / ") + "\n"
	}
	if entry.Link != "" {
		tweet += "\n" + entry.Link + "\n"
	}
	tweet += "\n#ATLtech #Atlanta"

	if len(tweet) > tweetLimit {
		tweet = tweet[:tweetLimit-3] + "..."
	}

	return tweet
}
