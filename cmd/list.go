package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listLongFlag bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [PREFIX]",
	Short: "List object keys",
	Long:  `Lists the keys in the configured bucket, optionally restricted to those starting with PREFIX.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		client, _, err := newClient(ctx)
		if err != nil {
			return err
		}

		for obj := range client.List(ctx, prefix) {
			if obj.Err != nil {
				return obj.Err
			}
			if listLongFlag {
				fmt.Printf("%d\t%s\t%s\n", obj.Size, obj.LastModified.Format("2006-01-02 15:04:05"), obj.Key)
			} else {
				fmt.Println(obj.Key)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listLongFlag, "long", "l", false, "Show size and modification time")
}
