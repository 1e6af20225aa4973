package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ccfrost/vkbackup/commands"
	"github.com/ccfrost/vkbackup/commands/gdrive"
	"github.com/ccfrost/vkbackup/commands/vk"
	"github.com/ccfrost/vkbackup/commands/yadisk"
	"github.com/ccfrost/vkbackup/vkbackupconfig"
	"github.com/spf13/cobra"
)

const vkbackup = "vkbackup"

func main() {
	var configPath string
	var config vkbackupconfig.VkbackupConfig
	var secrets vkbackupconfig.Secrets

	rootCmd := cobra.Command{
		Use:   vkbackup,
		Short: "Back up VK profile photos to cloud storage",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = vkbackupconfig.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := config.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			secrets, err = vkbackupconfig.LoadSecrets(config.SecretsFile)
			if err != nil {
				return fmt.Errorf("failed to load secrets: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file")

	newVkClient := func() *vk.Client {
		return vk.NewClient(secrets.VkToken, config.PhotoSizeTag)
	}

	runYandex := func(ctx context.Context, count int, albumID string) error {
		disk := yadisk.NewClient(secrets.YandexToken)
		return commands.BackupYandex(ctx, config, secrets.UserID, newVkClient(), disk, count, albumID)
	}

	runGoogle := func(ctx context.Context, count int, albumID string) error {
		if err := config.ValidateGoogle(); err != nil {
			return err
		}
		session := commands.NewDriveSessionProvider(config)
		httpClient, err := session.Client(ctx)
		if err != nil {
			return fmt.Errorf("failed to authorize google drive session: %w", err)
		}
		driveClient, err := gdrive.NewClient(ctx, httpClient)
		if err != nil {
			return err
		}
		return commands.BackupGoogle(ctx, config, secrets.UserID, newVkClient(), driveClient, nil, count, albumID)
	}

	statusCmd := cobra.Command{
		Use:   "status",
		Short: "Print the VK user's name and current status",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := commands.PrintUserInfo(context.Background(), newVkClient(), secrets.UserID); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}

	statusSetCmd := cobra.Command{
		Use:   "set <text>",
		Short: "Set the VK user's status text",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := newVkClient().SetStatus(context.Background(), secrets.UserID, args[0]); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	statusCmd.AddCommand(&statusSetCmd)

	statusReplaceCmd := cobra.Command{
		Use:   "replace <target> <replacement>",
		Short: "Replace a substring in the VK user's status text",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := newVkClient().ReplaceStatus(context.Background(), secrets.UserID, args[0], args[1]); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	statusCmd.AddCommand(&statusReplaceCmd)
	rootCmd.AddCommand(&statusCmd)

	backupCmd := cobra.Command{
		Use:   "backup",
		Short: "Back up photos to a cloud storage backend",
	}

	yandexCmd := cobra.Command{
		Use:   "yandex",
		Short: "Back up photos to Yandex Disk",
		Long: `Back up photos to Yandex Disk.
Yandex Disk fetches each photo directly from its VK URL; nothing is
downloaded locally. A manifest of uploaded files is written as JSON.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			count, _ := cmd.Flags().GetInt("count")
			albumID, _ := cmd.Flags().GetString("album")
			if err := runYandex(context.Background(), count, albumID); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	yandexCmd.Flags().IntP("count", "n", 5, "Number of photos to back up")
	yandexCmd.Flags().StringP("album", "a", "profile", "VK album id ('profile', 'wall', or a numeric album id)")
	backupCmd.AddCommand(&yandexCmd)

	googleCmd := cobra.Command{
		Use:   "google",
		Short: "Back up photos to Google Drive",
		Long: `Back up photos to Google Drive.
Each photo is downloaded locally and re-uploaded to a backup folder at the
Drive root. The first run opens an interactive OAuth authorization flow; the
token is cached for subsequent runs. A manifest of uploaded files is written
as JSON.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			count, _ := cmd.Flags().GetInt("count")
			albumID, _ := cmd.Flags().GetString("album")
			if err := runGoogle(context.Background(), count, albumID); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	googleCmd.Flags().IntP("count", "n", 10, "Number of photos to back up")
	googleCmd.Flags().StringP("album", "a", "wall", "VK album id ('profile', 'wall', or a numeric album id)")
	backupCmd.AddCommand(&googleCmd)

	allCmd := cobra.Command{
		Use:   "all",
		Short: "Print user info, then back up to Yandex Disk and Google Drive",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			if err := commands.PrintUserInfo(ctx, newVkClient(), secrets.UserID); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			if err := runYandex(ctx, 5, "profile"); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			if err := runGoogle(ctx, 10, "wall"); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			fmt.Println("Backup finished")
		},
	}
	backupCmd.AddCommand(&allCmd)
	rootCmd.AddCommand(&backupCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
