package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/jalali-timesheet/internal/calendar"
	"github.com/username/jalali-timesheet/internal/config"
	"github.com/username/jalali-timesheet/internal/export"
	"github.com/username/jalali-timesheet/internal/holiday"
	"github.com/username/jalali-timesheet/internal/timesheet"
	"github.com/username/jalali-timesheet/pkg/random"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jalali-timesheet",
		Short: "Jalali monthly timesheet generator",
		Long:  "Generate a synthetic monthly attendance report for a Jalali-calendar workplace, with jittered entry/exit times, capped overtime and spreadsheet export",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger()
				}
			} else {
				initLogger()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(holidaysCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var (
		monthFlag     string
		entryFlag     string
		exitFlag      string
		vacationsFile string
		vacationFlags []string
		seed          int64
		output        string
		quiet         bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the timesheet for one Jalali month",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if entryFlag != "" {
				cfg.Report.Entry = entryFlag
			}
			if exitFlag != "" {
				cfg.Report.Exit = exitFlag
			}
			if entryFlag != "" || exitFlag != "" {
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid entry/exit override: %w", err)
				}
			}

			year, month, err := resolveMonth(monthFlag)
			if err != nil {
				return err
			}

			registry, err := buildRegistry(cfg)
			if err != nil {
				return err
			}

			vacations, err := collectVacations(vacationsFile, vacationFlags)
			if err != nil {
				return err
			}

			generator := timesheet.NewGenerator(cfg, registry, logger)
			report, err := generator.Generate(year, month, vacations, random.New(seed))
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			if !quiet {
				printReport(report)
			}

			if output != "" {
				exporter := export.NewExporter(cfg.Report.VacationCreditMinutes)
				if err := exporter.Export(report, output); err != nil {
					return fmt.Errorf("export failed: %w", err)
				}
				fmt.Printf("\n✅ Spreadsheet written to %s\n", output)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Target Jalali month as YYYY/MM (default: current month)")
	cmd.Flags().StringVar(&entryFlag, "entry", "", "Nominal entry time HH:MM (overrides config)")
	cmd.Flags().StringVar(&exitFlag, "exit", "", "Nominal exit time HH:MM (overrides config)")
	cmd.Flags().StringVar(&vacationsFile, "vacations", "", "File with vacation dates, one YYYY/MM/DD per line")
	cmd.Flags().StringSliceVar(&vacationFlags, "vacation", nil, "Vacation date YYYY/MM/DD (repeatable)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible jitter (0 = time-based)")
	cmd.Flags().StringVar(&output, "output", "", "Write the report to this xlsx file")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress the console table")

	return cmd
}

func holidaysCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the registered public holidays of a Jalali year",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if year == 0 {
				year = calendar.Today().Year
			}

			registry, err := buildRegistry(cfg)
			if err != nil {
				return err
			}

			set, err := registry.HolidaysFor(year)
			if err != nil {
				return fmt.Errorf("failed to resolve holidays: %w", err)
			}
			if len(set) == 0 {
				fmt.Printf("No holiday data for %d\n", year)
				return nil
			}

			dates := make([]string, 0, len(set))
			for d := range set {
				dates = append(dates, d)
			}
			sort.Strings(dates)

			fmt.Printf("📅 Public holidays of %d (%d days)\n", year, len(dates))
			for _, d := range dates {
				date, err := calendar.ParseDate(d)
				if err != nil {
					continue
				}
				fmt.Printf("  %s  %s\n", d, calendar.WeekdayName(date))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Jalali year (default: current year)")

	return cmd
}

// resolveMonth parses a "YYYY/MM" flag value, defaulting to the current
// Jalali month.
func resolveMonth(flag string) (int, int, error) {
	if flag == "" {
		today := calendar.Today()
		return today.Year, today.Month, nil
	}

	parts := strings.Split(flag, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid --month %q: expected YYYY/MM", flag)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --month %q: bad year", flag)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --month %q: bad month", flag)
	}

	return year, month, nil
}

// buildRegistry wires the configured holiday source. File and HTTP sources
// fall back to the built-in static tables for years they lack.
func buildRegistry(cfg *config.Config) (holiday.Registry, error) {
	static := holiday.NewStaticRegistry()

	switch cfg.Holidays.Source {
	case "static":
		logger.Info("Using built-in holiday tables")
		return static, nil

	case "file":
		logger.Info("Using holiday file", zap.String("file", cfg.Holidays.File))
		fileRegistry := holiday.NewFileRegistry(cfg.Holidays.File, logger)
		if err := fileRegistry.Load(); err != nil {
			return nil, fmt.Errorf("failed to load holiday file: %w", err)
		}
		return holiday.NewCompositeRegistry(fileRegistry, static, logger), nil

	case "http":
		logger.Info("Using holiday API", zap.String("url", cfg.Holidays.APIURL))
		httpRegistry := holiday.NewHTTPRegistry(cfg.Holidays.APIURL, cfg.Holidays.GetCacheTTL(), logger)
		return holiday.NewCompositeRegistry(httpRegistry, static, logger), nil

	default:
		return nil, fmt.Errorf("unknown holiday source: %s", cfg.Holidays.Source)
	}
}

// collectVacations merges the vacation file (if any) with --vacation flags.
func collectVacations(file string, flags []string) (map[string]struct{}, error) {
	vacations := make(map[string]struct{})

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open vacation file: %w", err)
		}
		defer f.Close()

		vacations, err = timesheet.ParseVacationList(f, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to parse vacation file: %w", err)
		}
	}

	for _, raw := range flags {
		date, err := calendar.ParseDate(raw)
		if err != nil {
			logger.Warn("Skipping malformed --vacation value",
				zap.String("value", raw),
				zap.Error(err))
			continue
		}
		vacations[date.String()] = struct{}{}
	}

	return vacations, nil
}

func printReport(report *timesheet.Report) {
	fmt.Printf("📊 Timesheet %04d/%02d\n", report.Year, report.Month)
	fmt.Println("═══════════════════════════════════════════════════════════════════")
	fmt.Println("   # | Date       | Weekday                 | Entry | Exit  | Normal | OT")
	fmt.Println("-----+------------+-------------------------+-------+-------+--------+------")

	for _, row := range report.Rows {
		fmt.Printf(" %3d | %s | %-23s | %5s | %5s | %6.2f | %s\n",
			row.Index,
			row.Date,
			row.WeekdayName,
			row.Entry,
			row.Exit,
			row.NormalHours,
			row.Overtime)
	}

	totals := report.Totals
	fmt.Println("═══════════════════════════════════════════════════════════════════")
	fmt.Printf("  Work days:      %d\n", totals.WorkDays)
	fmt.Printf("  Weekends:       %d\n", totals.Weekends)
	fmt.Printf("  Holidays:       %d\n", totals.Holidays)
	fmt.Printf("  Vacation days:  %d\n", totals.VacationDays)
	fmt.Printf("  Normal total:   %s\n", totals.NormalHM())
	fmt.Printf("  Overtime total: %s\n", totals.OvertimeHM())
	fmt.Printf("  Vacation total: %s\n", totals.VacationHM())
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
