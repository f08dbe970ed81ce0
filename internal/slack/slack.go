// Package slack posts text to a team messaging channel.
package slack

import (
	"context"
	"fmt"

	slackapi "github.com/slack-go/slack"
)

// Poster abstracts the messaging collaborator. Implementations only need to
// report success or failure of a post.
type Poster interface {
	Post(ctx context.Context, channel, text string) error
}

type Client struct {
	api *slackapi.Client
}

func New(token string) *Client {
	return &Client{api: slackapi.New(token)}
}

func (c *Client) Post(ctx context.Context, channel, text string) error {
	if _, _, err := c.api.PostMessageContext(ctx, channel, slackapi.MsgOptionText(text, false)); err != nil {
		return fmt.Errorf("failed to post message to %s: %w", channel, err)
	}
	return nil
}
