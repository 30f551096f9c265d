package main

import (
	"errors"
	"fmt"
	"strings"

	v1 "github.com/Behyna/safetycheck/internal/api/v1"
	"github.com/Behyna/safetycheck/internal/location"
	"github.com/Behyna/safetycheck/internal/model"
	"github.com/Behyna/safetycheck/internal/service"
	"github.com/spf13/cobra"
)

var errNoContactReached = errors.New("no emergency contact could be reached")

var (
	contactFlags []string
	latitude     float64
	longitude    float64
	accuracy     float64
)

var emergencyCmd = &cobra.Command{
	Use:   "emergency",
	Short: "Dispatch an emergency alert to every given contact",
	Example: `  alertctl emergency --contact "Alice=+61411111111" --contact "Bob=+61422222222" \
    --lat -33.8688 --lng 151.2093 --accuracy 25`,
	RunE: sendEmergency,
}

func init() {
	emergencyCmd.Flags().StringArrayVar(&contactFlags, "contact", nil, "contact as NAME=PHONE (repeatable)")
	emergencyCmd.Flags().Float64Var(&latitude, "lat", 0, "last known latitude")
	emergencyCmd.Flags().Float64Var(&longitude, "lng", 0, "last known longitude")
	emergencyCmd.Flags().Float64Var(&accuracy, "accuracy", 0, "location accuracy in metres")
	emergencyCmd.MarkFlagsRequiredTogether("lat", "lng")
	rootCmd.AddCommand(emergencyCmd)
}

func sendEmergency(cmd *cobra.Command, args []string) error {
	contacts, err := parseContacts(contactFlags)
	if err != nil {
		return err
	}

	var loc *location.Input
	if cmd.Flags().Changed("lat") {
		loc = &location.Input{Lat: latitude, Lng: longitude}
		if cmd.Flags().Changed("accuracy") {
			loc.Accuracy = accuracy
		}
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	svc, err := newEmergencyService(logger)
	if err != nil {
		return err
	}

	summary, err := svc.Dispatch(cmd.Context(), service.DispatchCommand{
		Contacts:    contacts,
		Location:    loc,
		Credentials: credentials(),
	})
	if err != nil {
		return err
	}

	if err := printJSON(cmd.OutOrStdout(), v1.NewEmergencyResponse(summary)); err != nil {
		return err
	}

	if !summary.Success() {
		return errNoContactReached
	}
	return nil
}

// parseContacts reads NAME=PHONE pairs. Phone format is left to the
// dispatcher so the CLI reports the same errors as the API.
func parseContacts(values []string) ([]model.Contact, error) {
	contacts := make([]model.Contact, 0, len(values))
	for _, value := range values {
		name, phone, ok := strings.Cut(value, "=")
		if !ok {
			return nil, fmt.Errorf("invalid contact %q: expected NAME=PHONE", value)
		}
		contacts = append(contacts, model.Contact{
			Name:  strings.TrimSpace(name),
			Phone: strings.TrimSpace(phone),
		})
	}
	return contacts, nil
}
