package commands

import (
	"context"
	"fmt"

	"github.com/ccfrost/vkbackup/commands/vk"
)

// PrintUserInfo resolves the user's display name and current status and
// prints them to stdout.
func PrintUserInfo(ctx context.Context, client *vk.Client, userID string) error {
	label, err := client.UserLabel(ctx, userID)
	if err != nil {
		return err
	}
	for name, id := range label {
		fmt.Printf("%s (id %d)\n", name, id)
	}

	status, err := client.Status(ctx, userID)
	if err != nil {
		return err
	}
	if status != "" {
		fmt.Printf("Status: %s\n", status)
	}
	return nil
}
