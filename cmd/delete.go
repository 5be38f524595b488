package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete KEY",
	Short: "Remove an object",
	Long:  `Removes the object at KEY. Deleting an absent key succeeds silently.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		key := args[0]

		client, logg, err := newClient(ctx)
		if err != nil {
			return err
		}

		if err := client.Delete(ctx, key); err != nil {
			return err
		}

		logg.Info("Object deleted", zap.String("key", key))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deleteCmd)
}
