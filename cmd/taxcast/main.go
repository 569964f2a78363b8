package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"taxcast/internal/calculation"
	"taxcast/internal/compare"
	"taxcast/internal/config"
	"taxcast/internal/domain"
	"taxcast/internal/output"
	"taxcast/internal/schedule"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxcast %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// loadProvider resolves the bracket tables for a command: an explicit
// --schedules file, a schedules.yaml in the working directory, or the
// built-in tables.
func loadProvider(cmd *cobra.Command) *schedule.StaticProvider {
	schedulesFile, _ := cmd.Flags().GetString("schedules")

	if schedulesFile != "" || fileExists("schedules.yaml") {
		if schedulesFile == "" {
			schedulesFile = "schedules.yaml"
		}

		provider, err := schedule.LoadProvider(schedulesFile)
		if err != nil {
			fmt.Printf("Failed to load schedules from %s: %v\n", schedulesFile, err)
			fmt.Printf("Falling back to built-in tables...\n")
			return schedule.NewStaticProvider()
		}

		fmt.Printf("Loaded tax schedules from: %s\n", schedulesFile)
		return provider
	}

	return schedule.NewStaticProvider()
}

var rootCmd = &cobra.Command{
	Use:   "taxcast",
	Short: "Federal income tax estimator CLI",
	Long:  "Estimates federal income tax liability and the year-end refund or amount due from W-2 and paystub figures",
}

var estimateCmd = &cobra.Command{
	Use:   "estimate [input-file]",
	Short: "Estimate liability and refund for a filing",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		filing, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		// The flag overrides the file's projection setting either way
		if cmd.Flags().Changed("project") {
			project, _ := cmd.Flags().GetBool("project")
			filing.ProjectToYearEnd = project
		}

		estimator := calculation.NewEstimator(loadProvider(cmd))
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			estimator.SetLogger(simpleCLILogger{})
		}
		estimator.Debug = debugMode

		est, err := estimator.Estimate(filing)
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("Unknown output format: %s (valid: console, json, csv)", outputFormat)
		}

		data, err := f.Format(est)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a filing file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		filing, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Filing file %s is valid\n", inputFile)
		fmt.Printf("  Tax year: %d (%s)\n", filing.TaxYear, filing.FilingStatus)
		fmt.Printf("  W-2 entries: %d\n", len(filing.W2s))
		fmt.Printf("  Paystub entries: %d\n", len(filing.Paystubs))

		for _, warning := range parser.Warnings(filing) {
			fmt.Printf("  Warning: %s\n", warning)
		}
	},
}

var bracketsCmd = &cobra.Command{
	Use:   "brackets [year] [status]",
	Short: "Show the bracket ladder for a tax year",
	Long: `Show the standard deduction and bracket ladder for a tax year.

Examples:
  taxcast brackets                 # list available years
  taxcast brackets 2025            # both statuses for 2025
  taxcast brackets 2025 mfj        # one status
`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		provider := loadProvider(cmd)

		if len(args) == 0 {
			years := provider.Years()
			if len(years) == 0 {
				fmt.Println("No tax schedules loaded")
				return
			}
			fmt.Println("Available tax years:")
			for _, year := range years {
				fmt.Printf("  %d\n", year)
			}
			return
		}

		year, err := strconv.Atoi(args[0])
		if err != nil {
			log.Fatalf("Invalid year %q", args[0])
		}

		statuses := []domain.FilingStatus{domain.FilingSingle, domain.FilingMarriedFilingJointly}
		if len(args) == 2 {
			status, err := domain.ParseFilingStatus(args[1])
			if err != nil {
				log.Fatal(err)
			}
			statuses = []domain.FilingStatus{status}
		}

		for _, status := range statuses {
			if err := printSchedule(provider, year, status); err != nil {
				log.Fatal(err)
			}
		}
	},
}

// printSchedule writes one (year, status) ladder to stdout
func printSchedule(provider schedule.Provider, year int, status domain.FilingStatus) error {
	deduction, err := provider.Deduction(year, status)
	if err != nil {
		return err
	}
	bands, err := provider.Brackets(year, status)
	if err != nil {
		return err
	}

	fmt.Printf("TAX SCHEDULE: %d (%s)\n", year, status)
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Standard Deduction: %s\n\n", output.FormatCurrency(deduction))

	for _, band := range bands {
		span := fmt.Sprintf("%s and up", output.FormatCurrency(band.Lower))
		if !band.Unbounded() {
			span = fmt.Sprintf("%s to %s", output.FormatCurrency(band.Lower), output.FormatCurrency(*band.Upper))
		}
		fmt.Printf("  %-8s %s\n", output.FormatRate(band.Rate), span)
	}
	fmt.Println()

	return nil
}

var withholdingCmd = &cobra.Command{
	Use:   "withholding [input-file]",
	Short: "Calculate the per-period withholding change needed to break even",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		filing, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		estimator := calculation.NewEstimator(loadProvider(cmd))
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			estimator.SetLogger(simpleCLILogger{})
		}
		estimator.Debug = debugMode

		plan, err := estimator.PlanWithholding(filing)
		if err != nil {
			log.Fatal(err)
		}

		est := plan.Estimate
		fmt.Println("WITHHOLDING ADJUSTMENT ANALYSIS")
		fmt.Println("========================================")
		fmt.Printf("Tax Year: %d (%s)\n", est.TaxYear, est.FilingStatus)
		fmt.Printf("Estimated Liability: %s\n", output.FormatCurrency(est.TaxLiability))
		fmt.Printf("Projected Withholding: %s\n", output.FormatCurrency(est.TotalWithheld))
		if est.IsRefund {
			fmt.Printf("Projected Refund: %s\n\n", output.FormatCurrency(est.RefundAmount))
		} else {
			fmt.Printf("Projected Amount Due: %s\n\n", output.FormatCurrency(est.AmountDue))
		}

		fmt.Printf("Remaining Pay Periods: %d\n", plan.RemainingPeriods)
		fmt.Printf("Per-Period Adjustment: %s\n\n", output.FormatCurrency(plan.PerPeriodChange))

		fmt.Println("INTERPRETATION:")
		fmt.Println("- A positive adjustment is extra withholding needed each period to break even")
		fmt.Println("- A negative adjustment is how much each period could drop without owing at filing")
		fmt.Println("- Withholding changes take effect through a new W-4 with your employer")
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare a filing against alternative statuses and years",
	Long: `Compare a filing against alternative filing statuses and tax years.

Each --with flag names one variant: a filing status, a tax year, or both
joined by a comma. Whatever the variant leaves out comes from the filing.

Examples:
  taxcast compare filing.yaml --with mfj
  taxcast compare filing.yaml --with mfj,2024 --with 2024 --format csv
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		filing, err := parser.LoadFromFile(inputFile)
		if err != nil {
			log.Fatal(err)
		}

		variantSpecs, _ := cmd.Flags().GetStringArray("with")
		if len(variantSpecs) == 0 {
			log.Fatal("--with flag is required to specify variants to compare")
		}

		estimator := calculation.NewEstimator(loadProvider(cmd))
		debugMode, _ := cmd.Flags().GetBool("debug")
		if debugMode {
			estimator.SetLogger(simpleCLILogger{})
			estimator.Debug = true
		}

		compareEngine := compare.NewCompareEngine(estimator)

		comparisonSet, err := compareEngine.Compare(filing, variantSpecs)
		if err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}

		// Set input path for display
		comparisonSet.InputPath = inputFile

		outputFormat, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(outputFormat) {
		case "csv":
			formatter := &compare.CSVFormatter{}
			out, err := formatter.Format(comparisonSet)
			if err != nil {
				log.Fatalf("Failed to format CSV: %v", err)
			}
			fmt.Print(out)

		case "json":
			formatter := &compare.JSONFormatter{Pretty: true}
			out, err := formatter.Format(comparisonSet)
			if err != nil {
				log.Fatalf("Failed to format JSON: %v", err)
			}
			fmt.Print(out)

		case "table", "console", "":
			formatter := &compare.TableFormatter{}
			fmt.Print(formatter.Format(comparisonSet))

		default:
			log.Fatalf("Unknown output format: %s (valid: table, csv, json)", outputFormat)
		}
	},
}

func init() {
	estimateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	estimateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	estimateCmd.Flags().Bool("project", false, "Project paystub figures to year end before estimating")
	estimateCmd.Flags().String("schedules", "", "Path to a tax schedules file (default: schedules.yaml if it exists)")

	bracketsCmd.Flags().String("schedules", "", "Path to a tax schedules file (default: schedules.yaml if it exists)")

	withholdingCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	withholdingCmd.Flags().String("schedules", "", "Path to a tax schedules file (default: schedules.yaml if it exists)")

	compareCmd.Flags().StringArrayP("with", "w", nil, "Variant to compare: a status, a year, or \"status,year\" (repeatable)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")
	compareCmd.Flags().String("schedules", "", "Path to a tax schedules file (default: schedules.yaml if it exists)")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(bracketsCmd)
	rootCmd.AddCommand(withholdingCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
