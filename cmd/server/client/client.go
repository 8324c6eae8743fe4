// Package client provides commands that call a running TinkerTools API server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	apiv1alpha1 "github.com/tinkertools/tinker-api/internal/api/tinkertools/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the TinkerTools API",
	Long:  `Client commands make real gRPC requests against a running TinkerTools API server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	// Item commands
	ClientCmd.AddCommand(getItemCmd)
	ClientCmd.AddCommand(resolveCmd)
	ClientCmd.AddCommand(searchCmd)

	// Compatibility commands
	ClientCmd.AddCommand(evaluateCmd)

	// Profile commands
	ClientCmd.AddCommand(profileCmd)
}

// createClient creates a TinkerService client
func createClient() (apiv1alpha1.TinkerServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return apiv1alpha1.NewTinkerServiceClient(conn), cleanup, nil
}
