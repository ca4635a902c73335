// Package client provides commands that call the roster gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/roster/v1alpha1"
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
	Short: "Client commands for the roster service",
	Long:  `Client commands edit the live sheet on a running server by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON responses")

	// Sheet commands
	ClientCmd.AddCommand(getSheetCmd)
	ClientCmd.AddCommand(describeCmd)
	ClientCmd.AddCommand(loadSheetCmd)
	ClientCmd.AddCommand(saveSheetCmd)

	// Roster commands
	ClientCmd.AddCommand(addCharacterCmd)
	ClientCmd.AddCommand(resetAllCmd)
	ClientCmd.AddCommand(updateAttributeCmd)
	ClientCmd.AddCommand(updateSkillCmd)
	ClientCmd.AddCommand(selectClassCmd)

	// Check commands
	ClientCmd.AddCommand(rollCheckCmd)
	ClientCmd.AddCommand(setPartyCheckCmd)
	ClientCmd.AddCommand(rollPartyCheckCmd)
}

// createRosterClient dials the server and returns a roster client
func createRosterClient() (v1alpha1.RosterServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewRosterServiceClient(conn), cleanup, nil
}

// describeError turns a status error back into a readable message
func describeError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	if reason := errors.GetReason(converted); reason != "" {
		return fmt.Errorf("failed to %s: %s (%s)", action, errors.GetMessage(converted), reason)
	}
	return fmt.Errorf("failed to %s: %w", action, converted)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("character index must be a number: %q", arg)
	}
	return index, nil
}

func parseDelta(arg string) (int, error) {
	delta, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("delta must be a signed number: %q", arg)
	}
	return delta, nil
}
