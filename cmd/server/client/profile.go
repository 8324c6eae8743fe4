package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/tinkertools/tinker-api/internal/api/tinkertools/v1alpha1"
	"github.com/tinkertools/tinker-api/internal/entities/ao"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage saved profiles",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create [profile.json]",
	Short: "Save a profile from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileCreate,
}

var profileGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileGet,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileGetCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}

func printProfile(cmd *cobra.Command, p *ao.Profile) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (ID: %s) level %d, profession %d, breed %d, gender %d, %d stats, %d skills\n",
		p.Name, p.ID, p.Level, p.Profession, p.Breed, p.Gender, len(p.Stats), len(p.Skills))
}

func runProfileCreate(cmd *cobra.Command, args []string) error {
	profile, err := readProfileFile(args[0])
	if err != nil {
		return err
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateProfile(ctx, &apiv1alpha1.CreateProfileRequest{Profile: profile})
	if err != nil {
		return describeError("create profile", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printProfile(cmd, resp.Profile)
	return nil
}

func runProfileGet(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetProfile(ctx, &apiv1alpha1.GetProfileRequest{Id: args[0]})
	if err != nil {
		return describeError("get profile", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	printProfile(cmd, resp.Profile)
	return nil
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListProfiles(ctx, &apiv1alpha1.ListProfilesRequest{})
	if err != nil {
		return describeError("list profiles", err)
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Found %d profiles:\n\n", len(resp.Profiles))
	for _, p := range resp.Profiles {
		printProfile(cmd, p)
	}
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteProfile(ctx, &apiv1alpha1.DeleteProfileRequest{Id: args[0]}); err != nil {
		return describeError("delete profile", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
	return nil
}
