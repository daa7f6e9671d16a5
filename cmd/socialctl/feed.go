package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"masterboxer.com/project-micro-social/models"
)

func (c *cli) feedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "List every post, user by user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			feed, err := c.social.Feed()
			if err != nil {
				return err
			}
			renderFeed(cmd.OutOrStdout(), feed)
			return nil
		},
	}
}

func (c *cli) timelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "List posts from the users you follow, then your own",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			username, err := c.mustCurrentUser()
			if err != nil {
				return err
			}
			timeline, err := c.social.Timeline(username)
			if err != nil {
				return err
			}
			renderFeed(cmd.OutOrStdout(), timeline)
			return nil
		},
	}
}

func (c *cli) usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List every registered username",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.social.Users()
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "🤷 No users yet")
				return nil
			}
			for _, u := range users {
				fmt.Fprintln(cmd.OutOrStdout(), u)
			}
			return nil
		},
	}
}

func renderFeed(out io.Writer, entries []models.FeedEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "🤷 Nothing to show")
		return
	}

	table := tablewriter.NewWriter(out)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Author", "#", "Post", "👍", "👎", "Posted"})

	for _, e := range entries {
		table.Append([]string{
			color.New(color.Bold, color.FgHiGreen).Sprint(e.Author),
			strconv.Itoa(e.Index),
			e.Post.Content,
			strconv.Itoa(e.Post.Likes),
			strconv.Itoa(e.Post.Dislikes),
			e.Post.Timestamp,
		})
	}
	table.Render()
}
