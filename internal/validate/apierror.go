package validate

import "rental-console/internal/backend"

// Which form field each backend error code belongs to. Codes without an
// entry fall through to the generic banner.
var codeFields = map[backend.ErrorCode]struct {
	field   string
	message string
}{
	backend.CodeEmailTaken:         {"email", "Email already registered"},
	backend.CodeLicenseTaken:       {"driver_license", "Driver license already registered"},
	backend.CodePlateTaken:         {"license_plate", "License plate already exists"},
	backend.CodeVehicleUnavailable: {"vehicle_id", "Vehicle is not available for the selected dates"},
}

// MapAPIError translates a backend rejection into field errors where the
// error code is recognized. The second return is a generic banner message
// for everything else; exactly one of the two is populated.
func MapAPIError(err error) (Errors, string) {
	apiErr, ok := backend.AsAPIError(err)
	if !ok {
		return nil, "Something went wrong. Please try again."
	}

	if mapping, known := codeFields[apiErr.Code]; known {
		errs := Errors{}
		errs.Add(mapping.field, mapping.message)
		return errs, ""
	}

	if apiErr.Status == 0 {
		return nil, "Could not reach the server. Please try again."
	}
	return nil, "Submission failed. Please check the form and try again."
}
