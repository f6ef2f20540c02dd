package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/mediaform/api/handlers"
	"github.com/yourusername/mediaform/internal/app"
	"github.com/yourusername/mediaform/internal/domain"
	"github.com/yourusername/mediaform/internal/infrastructure"
	"github.com/yourusername/mediaform/pkg/logger"
)

var (
	configPath string
	apiBase    string
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "mediaform",
		Short: "MediaForm CLI - submit media URLs to the download API",
		Long:  `A command-line front end for a yt-dlp download API: validates a URL, detects its platform and fetches the produced file.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&apiBase, "api", "", "Download API base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves config plus CLI overrides
func loadConfig() (*domain.Config, error) {
	config, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if apiBase != "" {
		config.API.BaseURL = apiBase
	}
	return config, nil
}

// newLogger builds a CLI logger: quiet unless --verbose
func newLogger() *zap.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Config{
		Level:      level,
		Format:     "console",
		OutputPath: "stderr",
	})
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

var getCmd = &cobra.Command{
	Use:   "get [url]",
	Short: "Submit a URL and print the download link",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config, err := loadConfig()
		if err != nil {
			fatalf("%v", err)
		}
		log := newLogger()
		defer log.Sync()

		client := infrastructure.NewAPIClient(&config.API, log)
		form := app.NewFormController(client, log)

		platform := form.SetURL(args[0])
		if err := form.Submit(cmd.Context()); err != nil {
			session := form.Session()
			if session.ErrorMessage != "" {
				fatalf("%s", session.ErrorMessage)
			}
			fatalf("%v", err)
		}

		session := form.Session()
		fmt.Printf("Platform: %s\n", platform)
		fmt.Printf("Message:  %s\n", session.Result.Message)
		fmt.Printf("File:     %s\n", session.Result.Filename)
		fmt.Printf("Link:     %s\n", form.DownloadLink())

		save, _ := cmd.Flags().GetBool("save")
		output, _ := cmd.Flags().GetString("output")
		if !save && output == "" {
			return
		}
		if output == "" {
			output = session.Result.Filename
		}

		if err := saveFile(cmd.Context(), client, session.Result.DownloadURL, output); err != nil {
			fatalf("failed to save file: %v", err)
		}
		fmt.Printf("Saved:    %s\n", output)

		notifier := infrastructure.NewNotificationService(&config.Notification, log)
		notifier.NotifyFileSaved(filepath.Base(output), platform)
	},
}

// saveFile fetches the produced file into a local path
func saveFile(ctx context.Context, client *infrastructure.APIClient, downloadURL, output string) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := client.FetchFile(ctx, downloadURL, f); err != nil {
		os.Remove(output)
		return err
	}
	return nil
}

var detectCmd = &cobra.Command{
	Use:   "detect [url]",
	Short: "Show which platform a URL belongs to",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		platform := domain.DetectPlatform(args[0])
		if platform == domain.PlatformUnknown {
			fmt.Println("none")
			return
		}
		fmt.Println(platform)
	},
}

var themeCmd = &cobra.Command{
	Use:       "theme [show|toggle|dark|light]",
	Short:     "Show or change the persisted theme preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"show", "toggle", "dark", "light"},
	Run: func(cmd *cobra.Command, args []string) {
		config, err := loadConfig()
		if err != nil {
			fatalf("%v", err)
		}
		log := newLogger()
		defer log.Sync()

		if err := os.MkdirAll(filepath.Dir(config.Preferences.DatabasePath), 0755); err != nil {
			fatalf("%v", err)
		}
		prefs, err := infrastructure.NewSQLitePreferenceRepository(config.Preferences.DatabasePath)
		if err != nil {
			fatalf("%v", err)
		}
		defer prefs.Close()

		themes := app.NewThemeManager(prefs, log)

		action := "show"
		if len(args) == 1 {
			action = args[0]
		}

		var current domain.Theme
		switch action {
		case "show":
			current = themes.Current()
		case "toggle":
			current, err = themes.Toggle()
		case "dark", "light":
			current, err = themes.Set(domain.Theme(action))
		default:
			fatalf("unknown action: %s", action)
		}
		if err != nil {
			fatalf("%v", err)
		}

		fmt.Println(current)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(handlers.Version)
	},
}

func init() {
	getCmd.Flags().BoolP("save", "s", false, "Save the produced file to the current directory")
	getCmd.Flags().StringP("output", "o", "", "Save the produced file to this path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
