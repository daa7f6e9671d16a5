package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"masterboxer.com/project-micro-social/models"
)

func (c *cli) postCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post <content>",
		Short: "Publish a post as the signed-in user",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := c.mustCurrentUser()
			if err != nil {
				return err
			}
			p, err := c.social.Publish(username, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "📝 Posted at %s\n", p.Timestamp)
			return nil
		},
	}
}

func (c *cli) followCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "follow <username>",
		Short: "Follow another user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := c.mustCurrentUser()
			if err != nil {
				return err
			}
			if err := c.social.FollowUser(username, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Following %s\n", args[0])
			return nil
		},
	}
}

func (c *cli) likeCmd() *cobra.Command {
	return c.reactCmd("like", "Like a post", func(actor, owner string, index int) (models.Post, error) {
		return c.social.Like(actor, owner, index)
	})
}

func (c *cli) dislikeCmd() *cobra.Command {
	return c.reactCmd("dislike", "Dislike a post", func(actor, owner string, index int) (models.Post, error) {
		return c.social.Dislike(actor, owner, index)
	})
}

func (c *cli) reactCmd(use, short string, toggle func(actor, owner string, index int) (models.Post, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <author> <index>",
		Short: short + " (author and index as shown by `socialctl feed`)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Errorf("invalid post index %q", args[1])
			}
			actor, err := c.currentUser()
			if err != nil {
				return err
			}
			p, err := toggle(actor, args[0], index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "👍 %d  👎 %d\n", p.Likes, p.Dislikes)
			return nil
		},
	}
}
