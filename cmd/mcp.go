package cmd

import (
	"github.com/mealpoint/nutriscore/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Nutriscore MCP server",
	Long:  `Launch an MCP server that allows AI agents to compute targets and score foods via standard tools.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, catalogStore)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
