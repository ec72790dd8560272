package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arkhamd/arkhamd/pkg/config"
)

var (
	validateConfigPath string
	validateSeedPath   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate config and seed roster files without starting the server",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "Config file to validate")
	validateCmd.Flags().StringVar(&validateSeedPath, "seed", "", "Seed roster file to validate")
	rootCmd.AddCommand(validateCmd)
}

// validateResult is the JSON output of the validate command.
type validateResult struct {
	File   string `json:"file"`
	Kind   string `json:"kind"`
	Valid  bool   `json:"valid"`
	Detail string `json:"detail,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateConfigPath == "" && validateSeedPath == "" {
		return fmt.Errorf("nothing to validate: pass --config and/or --seed")
	}

	var results []validateResult
	failed := false

	if validateConfigPath != "" {
		res := validateResult{File: validateConfigPath, Kind: "config", Valid: true}
		if _, err := config.Load(validateConfigPath); err != nil {
			res.Valid = false
			res.Detail = err.Error()
			failed = true
		}
		results = append(results, res)
	}

	if validateSeedPath != "" {
		res := validateResult{File: validateSeedPath, Kind: "roster", Valid: true}
		if _, err := config.LoadRoster(validateSeedPath); err != nil {
			res.Valid = false
			res.Detail = err.Error()
			failed = true
		}
		results = append(results, res)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			if res.Valid {
				fmt.Printf("%s: OK\n", res.File)
			} else {
				fmt.Printf("%s: INVALID\n  %s\n", res.File, res.Detail)
			}
		}
	}

	if failed {
		return fmt.Errorf("validation failed")
	}
	return nil
}
