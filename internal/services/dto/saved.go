package dto

import "time"

type SavedListingResponse struct {
	ID      string         `json:"id"`
	Listing ListingSummary `json:"listing"`
	SavedOn time.Time      `json:"saved_on"`
}

type SaveResult struct {
	Saved   SavedListingResponse
	Created bool
}
