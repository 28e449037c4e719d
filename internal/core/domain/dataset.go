package domain

// DatasetInfo describes a catalogued export.
type DatasetInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Platform string `json:"platform"`
	Period   string `json:"period"`
	Path     string `json:"path"`
	Schema   string `json:"schema"`
}

// Dataset is a cleaned export ready for aggregation.
type Dataset struct {
	DatasetInfo
	Records  []Record      `json:"-"`
	Cleaning CleaningStats `json:"cleaning"`
	Warnings []Warning     `json:"warnings"`
}

// CleaningStats reports what the empty-country rule removed from an
// export. DroppedSpend is the spend carried by the removed rows.
type CleaningStats struct {
	OriginalRows int     `json:"original_rows"`
	CleanedRows  int     `json:"cleaned_rows"`
	DroppedRows  int     `json:"dropped_rows"`
	DroppedSpend float64 `json:"dropped_spend"`
}

// Add accumulates o into s.
func (s *CleaningStats) Add(o CleaningStats) {
	s.OriginalRows += o.OriginalRows
	s.CleanedRows += o.CleanedRows
	s.DroppedRows += o.DroppedRows
	s.DroppedSpend += o.DroppedSpend
}

// WarningMissingColumn marks a declared column absent from an export.
const WarningMissingColumn = "missing_column"

// Warning is a recovered data quality problem surfaced for display.
type Warning struct {
	Code    string `json:"code"`
	Source  string `json:"source,omitempty"`
	Column  string `json:"column,omitempty"`
	Message string `json:"message"`
}
