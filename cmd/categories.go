package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/aptiq/internal/questionbank"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List assessment categories",
	Run: func(cmd *cobra.Command, args []string) {
		bank := questionbank.NewBank()
		for _, info := range bank.Catalog() {
			fmt.Printf("%-16s %-28s %3d questions   %s\n",
				info.Key, info.Name, len(bank.Pool(info.Key)), info.Description)
		}
		blended := bank.Info(questionbank.CategoryBlended)
		fmt.Printf("%-16s %-28s %3d questions   %s\n",
			blended.Key, blended.Name, len(bank.All()), blended.Description)
	},
}
