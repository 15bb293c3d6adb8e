package dto

// TrendingNote is a ranked entry in the trending list.
type TrendingNote struct {
	NoteResponse
	TrendScore int64 `json:"trendScore" example:"342"`
}

// SubjectCount aggregates note counts per subject.
type SubjectCount struct {
	Subject string `json:"subject" example:"computer-science"`
	Count   int64  `json:"count" example:"57"`
}

// AnalyticsNotesResponse wraps a ranked note list.
type AnalyticsNotesResponse struct {
	Items []NoteResponse `json:"items"`
}

// TrendingResponse wraps the trending note list.
type TrendingResponse struct {
	Items []TrendingNote `json:"items"`
}

// SubjectsResponse wraps the subject aggregation.
type SubjectsResponse struct {
	Items []SubjectCount `json:"items"`
}
