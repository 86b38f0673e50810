package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bmicalc/internal/app"
)

var calcFlags struct {
	input app.Input
	json  bool
}

// calcCmd assesses a single profile and prints the result.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate BMI for one person",
	Example: `  bmicalc calc --weight 70 --height 175 --age 30 --gender male
  bmicalc calc --weight 154 --weight-unit lb --height 69 --height-unit in --age 30 --gender female --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCalc(cmd.OutOrStdout(), calcFlags.input, calcFlags.json)
	},
}

func init() {
	f := calcCmd.Flags()
	f.Float64Var(&calcFlags.input.Weight, "weight", 0, "body weight")
	f.Float64Var(&calcFlags.input.Height, "height", 0, "height")
	f.IntVar(&calcFlags.input.Age, "age", 0, "age in years")
	f.StringVar(&calcFlags.input.Gender, "gender", "other", "male, female or other")
	f.StringVar(&calcFlags.input.WeightUnit, "weight-unit", "kg", "kg or lb")
	f.StringVar(&calcFlags.input.HeightUnit, "height-unit", "cm", "cm or in")
	f.BoolVar(&calcFlags.json, "json", false, "print the assessment as JSON")
	_ = calcCmd.MarkFlagRequired("weight")
	_ = calcCmd.MarkFlagRequired("height")
	_ = calcCmd.MarkFlagRequired("age")

	rootCmd.AddCommand(calcCmd)
}

func runCalc(w io.Writer, in app.Input, asJSON bool) error {
	a, err := app.NewAssessmentService(nil).Assess(in)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(app.NewReport(a))
	}
	_, err = fmt.Fprintln(w, a.Summary())
	return err
}
