package model

// ResultStatus is the per-item outcome reported by the server
type ResultStatus string

const (
	ResultSuccess ResultStatus = "success"
	ResultError   ResultStatus = "error"
)

// ProcessRequest is the JSON body posted to an operation endpoint.
// URLs is sent exactly as the user typed it; the server does the splitting.
type ProcessRequest struct {
	URLs           string   `json:"urls"`
	Timestamp      *float64 `json:"timestamp,omitempty"`
	WatermarkText  string   `json:"watermark_text,omitempty"`
	WatermarkImage string   `json:"watermark_image,omitempty"`
}

// ResultRecord is the server-reported outcome for one input URL
type ResultRecord struct {
	Status           ResultStatus `json:"status"`
	URL              string       `json:"url,omitempty"`
	Title            string       `json:"title,omitempty"`
	Platform         string       `json:"platform,omitempty"`
	FileSize         int64        `json:"filesize,omitempty"`
	FilePath         string       `json:"filepath,omitempty"`
	TempFilePath     string       `json:"temp_filepath,omitempty"`
	DownloadFilename string       `json:"download_filename,omitempty"`
	Timestamp        *float64     `json:"timestamp,omitempty"`
	TextContent      string       `json:"text_content,omitempty"`
	WatermarkType    string       `json:"watermark_type,omitempty"`
	Error            string       `json:"error,omitempty"`
}

// IsSuccess reports whether the server processed the item
func (r *ResultRecord) IsSuccess() bool {
	return r.Status == ResultSuccess
}

// IsTemp reports whether the produced file is a cleanable temp artifact
func (r *ResultRecord) IsTemp() bool {
	return r.TempFilePath != ""
}

// HasFile reports whether a successful record points at a retrievable file
func (r *ResultRecord) HasFile() bool {
	return r.IsSuccess() && r.SourcePath() != ""
}

// SourcePath returns the temp path if present, otherwise the permanent path
func (r *ResultRecord) SourcePath() string {
	if r.TempFilePath != "" {
		return r.TempFilePath
	}
	return r.FilePath
}

// DownloadName returns the filename to save the file under
func (r *ResultRecord) DownloadName() string {
	if r.DownloadFilename != "" {
		return r.DownloadFilename
	}
	return FileName(r.SourcePath())
}

// ProcessResponse is the envelope returned by operation endpoints
type ProcessResponse struct {
	Results []ResultRecord `json:"results"`
	Error   string         `json:"error,omitempty"`
}

// UploadResponse is returned by the watermark upload endpoint
type UploadResponse struct {
	FilePath string `json:"filepath"`
	Error    string `json:"error,omitempty"`
}

// TempFileRequest asks the server to stream a produced file back
type TempFileRequest struct {
	TempFilePath     string `json:"temp_filepath"`
	DownloadFilename string `json:"download_filename"`
	FileType         string `json:"file_type"`
}

// CleanupRequest asks the server to delete a temp artifact
type CleanupRequest struct {
	TempFilePath string `json:"temp_filepath"`
	FileType     string `json:"file_type"`
}

// CleanupResponse is returned by the cleanup endpoint
type CleanupResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the generic error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewTempFileRequest builds the download request for a record
func NewTempFileRequest(r ResultRecord, fileType string) TempFileRequest {
	return TempFileRequest{
		TempFilePath:     r.SourcePath(),
		DownloadFilename: r.DownloadName(),
		FileType:         fileType,
	}
}

// NewCleanupRequest builds the cleanup request for a record
func NewCleanupRequest(r ResultRecord, fileType string) CleanupRequest {
	return CleanupRequest{
		TempFilePath: r.TempFilePath,
		FileType:     fileType,
	}
}
