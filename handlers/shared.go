package handlers

import "nfl-survivor-go/engineerrors"

// mustAppError coerces any error into an *engineerrors.AppError so a
// single writeAppError call can render it, defaulting to Transient
// when the error didn't already carry a classification.
func mustAppError(err error) *engineerrors.AppError {
	if appErr, ok := err.(*engineerrors.AppError); ok {
		return appErr
	}
	return engineerrors.Transient(err.Error())
}
