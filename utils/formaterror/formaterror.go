package formaterror

import "strings"

// FormatError maps raw driver error strings to the field-error shape the
// controllers return.
func FormatError(err string) map[string]string {

	errorMessages := make(map[string]string)

	if strings.Contains(err, "email") {
		errorMessages["Taken_email"] = "Email already exists"
	}
	if strings.Contains(strings.ToLower(err), "duplicate") || strings.Contains(err, "UNIQUE constraint") {
		errorMessages["Taken_email"] = "Email already exists"
	}
	if strings.Contains(err, "record not found") {
		errorMessages["No_record"] = "No Record Found"
	}

	if len(errorMessages) > 0 {
		return errorMessages
	}
	errorMessages["Incorrect_details"] = "Incorrect Details"
	return errorMessages
}
