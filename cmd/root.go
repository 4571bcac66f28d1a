/*
Copyright © 2020 hit.zhangjie@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hitzhangjie/dwarf2hdr/pkg/convert"
)

// rootCmd represents the dwarf2hdr command: it reads an ELF binary's
// DWARF debug information and writes a C++-header approximation of the
// type/declaration tree it finds (spec §6's CLI surface).
var rootCmd = &cobra.Command{
	Use:   "dwarf2hdr <input-elf-path> <output-path>",
	Short: "reconstruct a C++ header from an ELF binary's DWARF debug info",
	Long: `dwarf2hdr walks the DWARF debug information embedded in an ELF binary
and reconstructs an approximation of the C++ type and declaration tree
it describes: classes, structs, unions, typedefs, enums, free functions
and namespaces, with members, inheritance and template parameters.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := homedir.Expand(args[0])
		if err != nil {
			return fmt.Errorf("expand input path %s: %w", args[0], err)
		}
		out, err := homedir.Expand(args[1])
		if err != nil {
			return fmt.Errorf("expand output path %s: %w", args[1], err)
		}

		var progress convert.ProgressFunc
		if viper.GetBool("verbose") {
			progress = func(unitNo, totalUnits, newNodes, totalNodes int) {
				fmt.Fprintf(os.Stderr, "parsed unit %d/%d with %d new nodes, %d total\n",
					unitNo, totalUnits, newNodes, totalNodes)
			}
		}

		return convert.File(in, out, progress)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print per-compilation-unit progress to stderr")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("dwarf2hdr")
	viper.AutomaticEnv()
}
