package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/app"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/reports"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/infrastructure/reporting"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ReportCommandHandler exports NCR and instrument reports to files.
type ReportCommandHandler struct {
	logger logger.Logger
}

// NewReportCommandHandler initializes and returns a ReportCommandHandler
func NewReportCommandHandler() (*ReportCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ReportCommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *ReportCommandHandler) reportService(s *store) (reports.ReportService, error) {
	return app.NewReportService(s.repos.NCRs, s.repos.Loans, commandHandler.logger,
		reporting.NewPDFRenderer(), reporting.NewXLSXRenderer())
}

// NCRReportCmd writes the NCR report of a period as pdf or xlsx
func (commandHandler *ReportCommandHandler) NCRReportCmd(cmd *cobra.Command, _ []string) {
	filter := &reports.NCRFilter{}
	var err error
	if filter.Year, err = cmd.Flags().GetInt("year"); err != nil {
		commandHandler.logger.Error("invalid year flag", "error", err)
		return
	}
	if filter.Month, err = cmd.Flags().GetString("month"); err != nil {
		commandHandler.logger.Error("invalid month flag", "error", err)
		return
	}
	if filter.Source, err = cmd.Flags().GetString("source"); err != nil {
		commandHandler.logger.Error("invalid source flag", "error", err)
		return
	}
	if filter.Department, err = cmd.Flags().GetString("department"); err != nil {
		commandHandler.logger.Error("invalid department flag", "error", err)
		return
	}
	if err := filter.Validate(); err != nil {
		commandHandler.logger.Error("invalid report filter", "error", err)
		return
	}

	format, output, ok := commandHandler.outputFlags(cmd)
	if !ok {
		return
	}

	s, err := openStore(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error("could not open database", "error", err)
		return
	}
	defer s.close()

	reportService, err := commandHandler.reportService(s)
	if err != nil {
		commandHandler.logger.Error("could not create report service", "error", err)
		return
	}

	data, _, err := reportService.RenderNCR(cmd.Context(), filter, format)
	if err != nil {
		commandHandler.logger.Error("could not render NCR report", "error", err)
		return
	}
	commandHandler.write(output, data)
}

// InstrumentReportCmd writes the instrument issue/return log of a period as pdf or xlsx
func (commandHandler *ReportCommandHandler) InstrumentReportCmd(cmd *cobra.Command, _ []string) {
	filter := &reports.LoanFilter{}
	var err error
	if filter.Year, err = cmd.Flags().GetInt("year"); err != nil {
		commandHandler.logger.Error("invalid year flag", "error", err)
		return
	}
	if filter.Month, err = cmd.Flags().GetString("month"); err != nil {
		commandHandler.logger.Error("invalid month flag", "error", err)
		return
	}
	if filter.Department, err = cmd.Flags().GetString("department"); err != nil {
		commandHandler.logger.Error("invalid department flag", "error", err)
		return
	}
	if err := filter.Validate(); err != nil {
		commandHandler.logger.Error("invalid report filter", "error", err)
		return
	}

	format, output, ok := commandHandler.outputFlags(cmd)
	if !ok {
		return
	}

	s, err := openStore(cmd, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error("could not open database", "error", err)
		return
	}
	defer s.close()

	reportService, err := commandHandler.reportService(s)
	if err != nil {
		commandHandler.logger.Error("could not create report service", "error", err)
		return
	}

	data, _, err := reportService.RenderLoans(cmd.Context(), filter, format)
	if err != nil {
		commandHandler.logger.Error("could not render instrument report", "error", err)
		return
	}
	commandHandler.write(output, data)
}

func (commandHandler *ReportCommandHandler) outputFlags(cmd *cobra.Command) (string, string, bool) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		commandHandler.logger.Error("invalid format flag", "error", err)
		return "", "", false
	}
	if format != reports.FormatPDF && format != reports.FormatXLSX {
		commandHandler.logger.Error("format must be pdf or xlsx", "format", format)
		return "", "", false
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil || output == "" {
		commandHandler.logger.Error("output file is required")
		return "", "", false
	}
	return format, output, true
}

func (commandHandler *ReportCommandHandler) write(output string, data []byte) {
	if err := os.WriteFile(filepath.Clean(output), data, 0600); err != nil {
		commandHandler.logger.Error("could not write report", "output", output, "error", err)
		return
	}
	commandHandler.logger.Info("Report saved", "output", output, "bytes", len(data))
}

// InitReportCommands registers the report export commands
func InitReportCommands(rootCmd *cobra.Command) error {
	handler, err := NewReportCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create report command handler %w", err)
	}

	var ncrReportCmd = &cobra.Command{
		Use:   "ncr-report",
		Short: "Export the NCR report of a year or month range",
		Run:   handler.NCRReportCmd,
	}
	ncrReportCmd.Flags().IntP("year", "", 0, "Report year")
	ncrReportCmd.Flags().StringP("month", "", "", `Month ("07") or month range ("03-05"); empty for the whole year`)
	ncrReportCmd.Flags().StringP("source", "", "", "internal, supplier, customer or process")
	ncrReportCmd.Flags().StringP("department", "", "", "Department substring")
	ncrReportCmd.Flags().StringP("format", "", reports.FormatPDF, "pdf or xlsx")
	ncrReportCmd.Flags().StringP("output", "o", "", "Path to the output file")
	rootCmd.AddCommand(ncrReportCmd)

	var instrumentReportCmd = &cobra.Command{
		Use:   "instrument-report",
		Short: "Export the instrument issue/return log of a year or month range",
		Run:   handler.InstrumentReportCmd,
	}
	instrumentReportCmd.Flags().IntP("year", "", 0, "Report year")
	instrumentReportCmd.Flags().StringP("month", "", "", `Month ("07") or month range ("03-05"); empty for the whole year`)
	instrumentReportCmd.Flags().StringP("department", "", "", "Department substring")
	instrumentReportCmd.Flags().StringP("format", "", reports.FormatPDF, "pdf or xlsx")
	instrumentReportCmd.Flags().StringP("output", "o", "", "Path to the output file")
	rootCmd.AddCommand(instrumentReportCmd)

	return nil
}
