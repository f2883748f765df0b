package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/verge-client/pkg/verge"
	"github.com/fivetwenty-io/verge-client/pkg/vergeclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		username    string
		password    string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a VergeOS system",
		Long:  "Authenticate with a VergeOS management API endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get API endpoint
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return verge.ErrEndpointRequired
			}

			skipSSL := viper.GetBool("skip_ssl_validation")

			config := &verge.Config{
				APIEndpoint:   apiEndpoint,
				SkipTLSVerify: skipSSL,
			}

			if token != "" {
				config.Token = token
			} else {
				if username == "" {
					reader := bufio.NewReader(os.Stdin)
					fmt.Print("Username: ")
					username, _ = reader.ReadString('\n')
					username = strings.TrimSpace(username)
				}

				if password == "" {
					fmt.Print("Password: ")
					bytePassword, err := term.ReadPassword(int(syscall.Stdin))
					if err != nil {
						return fmt.Errorf("failed to read password: %w", err)
					}
					password = string(bytePassword)
					fmt.Println()
				}

				config.Username = username
				config.Password = password
			}

			ctx := context.Background()

			client, err := vergeclient.New(ctx, config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Test the credentials with a cheap request
			nodes, err := client.Nodes().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			saved := &Config{
				API:               config.APIEndpoint,
				Username:          username,
				Token:             token,
				Output:            viper.GetString("output"),
				SkipSSLValidation: skipSSL,
			}

			if err := saveConfig(saved); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to %s\n", config.APIEndpoint)
			fmt.Printf("System has %d node(s)\n", len(nodes))

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVarP(&username, "username", "u", "", "username for authentication")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for authentication")
	cmd.Flags().StringVarP(&token, "token", "t", "", "pre-issued API token")
	cmd.Flags().Bool("skip-ssl-validation", false, "skip SSL certificate validation")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from the VergeOS system",
		Long:  "Clear stored authentication credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""
			config.Username = ""

			if err := saveConfig(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")
			return nil
		},
	}
}
