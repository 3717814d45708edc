package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/blackwoodscreative/studio-api/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studioctl",
	Short: "studioctl - operations CLI for the studio contact API",
	Long: `studioctl talks to a running studio-api instance. It can post a test
submission through the full pipeline (CSRF token fetch included) to verify a
deployment end to end.`,
}

var (
	apiURL        string
	submitName    string
	submitEmail   string
	submitMessage string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send a test contact submission through a running instance",
	Long: `Fetches a CSRF token from the instance, then posts a contact submission
with it, exactly as the site frontend would.

Example:
  studioctl submit --url http://localhost:8080
  studioctl submit --url https://api.example.com --email you@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Submitting test message..."
		s.Start()
		defer s.Stop()

		jar, err := cookiejar.New(nil)
		if err != nil {
			return err
		}
		client := &http.Client{Timeout: 15 * time.Second, Jar: jar}

		// Token issuance sets the cookie on the jar and echoes the token
		resp, err := client.Get(apiURL + "/api/contact/csrf")
		if err != nil {
			return fmt.Errorf("failed to fetch CSRF token: %w", err)
		}
		var issued struct {
			Token string `json:"token"`
		}
		err = json.NewDecoder(resp.Body).Decode(&issued)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to parse CSRF response: %w", err)
		}

		payload, err := json.Marshal(map[string]string{
			"name":    submitName,
			"email":   submitEmail,
			"message": submitMessage,
		})
		if err != nil {
			return err
		}

		req, err := http.NewRequest(http.MethodPost, apiURL+"/api/contact", bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-CSRF-Token", issued.Token)

		resp, err = client.Do(req)
		if err != nil {
			return fmt.Errorf("submission failed: %w", err)
		}
		defer resp.Body.Close()

		var result struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("failed to parse submission response: %w", err)
		}

		s.Stop()
		if !result.Success {
			return fmt.Errorf("server rejected submission (%d): %s", resp.StatusCode, result.Message)
		}
		fmt.Printf("OK (%d): %s\n", resp.StatusCode, result.Message)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	submitCmd.Flags().StringVar(&apiURL, "url", "http://localhost:8080", "Base URL of the running instance")
	submitCmd.Flags().StringVar(&submitName, "name", "Deployment Check", "Name field of the test submission")
	submitCmd.Flags().StringVar(&submitEmail, "email", "ops@blackwoodscreative.com", "Email field of the test submission")
	submitCmd.Flags().StringVar(&submitMessage, "message", "Automated deployment verification message.", "Message field of the test submission")

	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
