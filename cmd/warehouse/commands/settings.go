package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

var logoFile string

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change branding and system settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, _, err := newController()
		if err != nil {
			return err
		}
		if err := ctrl.RefreshSettings(cmd.Context()); err != nil {
			return err
		}

		settings := ctrl.Store().Settings()
		keys := make([]string, 0, len(settings))
		for k := range settings {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		w := newTable()
		fmt.Fprintln(w, "KEY\tVALUE")
		for _, k := range keys {
			fmt.Fprintf(w, "%s\t%s\n", k, settings[k])
		}
		return w.Flush()
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := newController()
		if err != nil {
			return err
		}
		if err := client.UpdateSettings(cmd.Context(), map[string]string{args[0]: args[1]}); err != nil {
			return err
		}
		fmt.Printf("Setting %s updated\n", args[0])
		return nil
	},
}

var settingsLogoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Upload or remove the branding logo",
}

var settingsLogoUploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a logo file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(logoFile)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", logoFile, err)
		}
		defer file.Close()

		_, client, err := newController()
		if err != nil {
			return err
		}
		if err := client.UploadLogo(cmd.Context(), filepath.Base(logoFile), file); err != nil {
			return err
		}
		fmt.Println("Logo uploaded")
		return nil
	},
}

var settingsLogoDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the logo",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := newController()
		if err != nil {
			return err
		}
		if err := client.DeleteLogo(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Logo removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd, settingsLogoCmd)
	settingsLogoCmd.AddCommand(settingsLogoUploadCmd, settingsLogoDeleteCmd)

	settingsLogoUploadCmd.Flags().StringVar(&logoFile, "file", "", "Logo file to upload (required)")
	_ = settingsLogoUploadCmd.MarkFlagRequired("file")
}
