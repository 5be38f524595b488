package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/briantroy/rigor/core/storage"
)

var getOutputFlag string

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Retrieve an object",
	Long:  `Downloads the object at KEY. Writes to stdout unless --output names a local file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		key := args[0]

		client, logg, err := newClient(ctx)
		if err != nil {
			return err
		}

		if getOutputFlag != "" {
			err := client.GetFile(ctx, key, getOutputFlag)
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("object %q not found", key)
			}
			if err != nil {
				return err
			}
			logg.Info("Object downloaded", zap.String("key", key), zap.String("file", getOutputFlag))
			return nil
		}

		body, err := client.Get(ctx, key)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("object %q not found", key)
		}
		if err != nil {
			return err
		}
		defer body.Close()

		if _, err := io.Copy(os.Stdout, body); err != nil {
			return fmt.Errorf("failed to write object: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVarP(&getOutputFlag, "output", "o", "", "Write the object to this file instead of stdout")
}
