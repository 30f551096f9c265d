package main

import (
	"github.com/Behyna/safetycheck/internal/model"
	"github.com/Behyna/safetycheck/internal/service"
	"github.com/spf13/cobra"
)

var (
	testPhone string
	testName  string
)

var testSMSCmd = &cobra.Command{
	Use:   "test-sms",
	Short: "Send the SafetyCheck test message to one phone number",
	RunE:  sendTestSMS,
}

func init() {
	testSMSCmd.Flags().StringVar(&testPhone, "phone", "", "recipient phone number with country code")
	testSMSCmd.Flags().StringVar(&testName, "name", "", "recipient name")
	_ = testSMSCmd.MarkFlagRequired("phone")
	_ = testSMSCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(testSMSCmd)
}

func sendTestSMS(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	svc, err := newEmergencyService(logger)
	if err != nil {
		return err
	}

	result, err := svc.SendTest(cmd.Context(), service.TestMessageCommand{
		Contact:     model.Contact{Name: testName, Phone: testPhone},
		Credentials: credentials(),
	})
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), result)
}
