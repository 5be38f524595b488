package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/briantroy/rigor/core/storage"
)

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put KEY [FILE]",
	Short: "Upload an object",
	Long:  `Uploads FILE to KEY, overwriting any existing object. Reads stdin when FILE is omitted.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		key := args[0]

		client, logg, err := newClient(ctx)
		if err != nil {
			return err
		}

		var data storage.ObjectData
		if len(args) == 2 {
			data = storage.FromFile(args[1])
		} else {
			data = storage.FromReader(os.Stdin)
		}

		if err := client.Put(ctx, key, data); err != nil {
			return err
		}

		logg.Info("Object uploaded", zap.String("key", key))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(putCmd)
}
