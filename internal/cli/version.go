package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/macropower/chemicaljson/internal/version"
	"github.com/macropower/chemicaljson/pkg/cjson"
)

func GetVersionString() string {
	return fmt.Sprintf("%s+cjson.%d", version.String(), cjson.CurrentVersion)
}

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version of the cjson CLI",
		Args:  cobra.NoArgs,
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(GetVersionString())
		},
	}
}
