package commands

import (
	"fmt"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/calibration"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// CalibrationCommandHandler computes due dates and expiry status without a database.
type CalibrationCommandHandler struct {
	logger logger.Logger
	now    func() time.Time
}

// NewCalibrationCommandHandler initializes and returns a CalibrationCommandHandler
func NewCalibrationCommandHandler() (*CalibrationCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &CalibrationCommandHandler{
		logger: loggerInstance,
		now:    calibration.Now,
	}, nil
}

// NextDueCmd prints the next calibration date of a calibration date and frequency
func (commandHandler *CalibrationCommandHandler) NextDueCmd(cmd *cobra.Command, _ []string) {
	date, err := cmd.Flags().GetString("date")
	if err != nil {
		commandHandler.logger.Error("invalid date flag", "error", err)
		return
	}
	frequency, err := cmd.Flags().GetString("frequency")
	if err != nil {
		commandHandler.logger.Error("invalid frequency flag", "error", err)
		return
	}

	calibrationDate, err := time.Parse(time.DateOnly, date)
	if err != nil {
		commandHandler.logger.Error("date must be YYYY-MM-DD", "date", date)
		return
	}

	f, err := calibration.ParseFrequency(frequency)
	if err != nil {
		commandHandler.logger.Error("could not parse frequency", "frequency", frequency, "error", err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), calibration.NextDue(calibrationDate, f).Format(time.DateOnly))
}

// ClassifyCmd prints the expiry status and remaining days of a due date
func (commandHandler *CalibrationCommandHandler) ClassifyCmd(cmd *cobra.Command, _ []string) {
	nextDue, err := cmd.Flags().GetString("next-due")
	if err != nil {
		commandHandler.logger.Error("invalid next-due flag", "error", err)
		return
	}
	today, err := cmd.Flags().GetString("today")
	if err != nil {
		commandHandler.logger.Error("invalid today flag", "error", err)
		return
	}

	due, err := time.Parse(time.DateOnly, nextDue)
	if err != nil {
		commandHandler.logger.Error("next-due must be YYYY-MM-DD", "next-due", nextDue)
		return
	}

	reference := commandHandler.now()
	if today != "" {
		if reference, err = time.Parse(time.DateOnly, today); err != nil {
			commandHandler.logger.Error("today must be YYYY-MM-DD", "today", today)
			return
		}
	}

	status := calibration.Classify(due, reference)
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", status, status.Label(), calibration.DaysRemaining(due, reference))
}

// InitCalibrationCommands registers the due date commands
func InitCalibrationCommands(rootCmd *cobra.Command) error {
	handler, err := NewCalibrationCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create calibration command handler %w", err)
	}

	var nextDueCmd = &cobra.Command{
		Use:   "next-due",
		Short: "Compute the next calibration date",
		Run:   handler.NextDueCmd,
	}
	nextDueCmd.Flags().StringP("date", "", "", "Calibration date (YYYY-MM-DD)")
	nextDueCmd.Flags().StringP("frequency", "", "", `Calibration frequency, e.g. "4 Week", "6 Months" or "1 Year"`)
	rootCmd.AddCommand(nextDueCmd)

	var classifyCmd = &cobra.Command{
		Use:   "classify",
		Short: "Classify a due date as expired, near expiry or active",
		Run:   handler.ClassifyCmd,
	}
	classifyCmd.Flags().StringP("next-due", "", "", "Next calibration date (YYYY-MM-DD)")
	classifyCmd.Flags().StringP("today", "", "", "Reference date (YYYY-MM-DD), defaults to the current date")
	rootCmd.AddCommand(classifyCmd)

	return nil
}
