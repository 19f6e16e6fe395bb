package apperrors

import "net/http"

// Matching-domain error factories. Messages here are part of the API
// contract, do not reword them casually.

func CandidateNotFound(err error) *AppError {
	appErr := Wrap(err, CodeNotFound, "matching", "Candidate profile not found", http.StatusNotFound)
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

func ListingNotFound(err error) *AppError {
	appErr := Wrap(err, CodeNotFound, "matching", "Job listing not found", http.StatusNotFound)
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

func ListingFetchFailed(err error) *AppError {
	appErr := Wrap(err, CodeDatabaseError, "matching", "Failed to fetch job listings", http.StatusInternalServerError)
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

func CandidateFetchFailed(err error) *AppError {
	appErr := Wrap(err, CodeDatabaseError, "search", "Failed to fetch candidates", http.StatusInternalServerError)
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}
