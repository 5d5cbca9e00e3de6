package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/iksnae/cursor-archive/internal"
	"github.com/spf13/cobra"
)

var (
	inspectRaw bool
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <workspace-id>",
	Short: "Inspect a workspace's raw conversation data",
	Long: `Inspect the raw persisted conversation data of one workspace.

This command reads the two well-known keys of the workspace's state
database and reports what each holds:
  • composer.composerData (composer threads)
  • workbench.panel.aichat.view.aichat.chatdata (chat tabs)

Examples:
  cursor-archive inspect a1b2c3d4              # Summarize both keys
  cursor-archive inspect a1b2c3d4 --raw        # Dump the raw JSON values`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID := args[0]

		paths, err := internal.GetStoragePaths(storagePath)
		if err != nil {
			return fmt.Errorf("failed to get storage paths: %w", err)
		}

		ws, err := internal.FindWorkspace(paths.BasePath, workspaceID)
		if err != nil {
			return err
		}
		if !ws.HasStore() {
			return fmt.Errorf("workspace %s has no state database", workspaceID)
		}

		fmt.Printf("📋 Workspace: %s\n", ws.ID)
		if ws.Folder != "" {
			fmt.Printf("📁 Folder: %s\n", ws.Folder)
		}
		fmt.Printf("📊 Store: %s\n\n", ws.StorePath)

		store, err := internal.OpenStore(ws.StorePath)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer func() { _ = store.Close() }()

		if err := inspectKey(store, internal.ComposerDataKey); err != nil {
			return err
		}
		fmt.Println()
		return inspectKey(store, internal.ChatDataKey)
	},
}

func inspectKey(store *internal.Store, key string) error {
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Printf("🔑 Key: %s\n", key)
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")

	value, ok, err := store.GetValue(key)
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}
	if !ok {
		fmt.Println("⚠️  Key not present")
		return nil
	}
	fmt.Printf("📦 Size: %d byte(s)\n", len(value))

	switch key {
	case internal.ComposerDataKey:
		threads, err := internal.ParseComposerCollection(value)
		if err != nil {
			fmt.Printf("⚠️  Value does not parse as a composer collection: %v\n", err)
			break
		}
		fmt.Printf("🧵 Composer threads: %d\n", len(threads))
		for i, thread := range threads {
			name := thread.Name
			if name == "" {
				name = "Untitled"
			}
			fmt.Printf("  [%d] %s (ID: %s, %d message(s))\n", i+1, name, thread.ComposerID, len(thread.Messages()))
		}
	case internal.ChatDataKey:
		tabs, err := internal.ParseChatTabs(value)
		if err != nil {
			fmt.Printf("⚠️  Value does not parse as a chat collection: %v\n", err)
			break
		}
		fmt.Printf("💬 Chat tabs: %d\n", len(tabs))
		for i, tab := range tabs {
			title := tab.ChatTitle
			if title == "" {
				title = "Untitled"
			}
			fmt.Printf("  [%d] %s (ID: %s, %d bubble(s))\n", i+1, title, tab.TabID, len(tab.Bubbles))
		}
	}

	if inspectRaw {
		fmt.Println()
		var pretty json.RawMessage = value
		if formatted, err := json.MarshalIndent(pretty, "", "  "); err == nil {
			fmt.Println(string(formatted))
		} else {
			fmt.Println(string(value))
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectRaw, "raw", false, "Dump the raw JSON values")
}
