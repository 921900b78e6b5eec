package model

// OperationKind is one of the processing actions the server offers
type OperationKind string

const (
	OperationDownload  OperationKind = "download"
	OperationBGM       OperationKind = "bgm"
	OperationThumbnail OperationKind = "thumbnail"
	OperationText      OperationKind = "text"
	OperationWatermark OperationKind = "watermark"
)

// API endpoints bound to each operation
const (
	EndpointDownloadVideos = "/api/download_videos"
	EndpointExtractBGM     = "/api/extract_bgm"
	EndpointExtractThumb   = "/api/extract_thumbnail"
	EndpointExtractText    = "/api/extract_text"
	EndpointAddWatermark   = "/api/add_watermark"

	EndpointUploadWatermark = "/api/upload_watermark"
	EndpointDownloadTemp    = "/api/download_temp_file"
	EndpointCleanupTemp     = "/api/cleanup_temp_file"
	EndpointLegacyDownload  = "/download/"
)

// File types understood by the temp-file endpoints
const (
	FileTypeVideo     = "video"
	FileTypeBGM       = "bgm"
	FileTypeThumbnail = "thumbnail"
)

// AllOperationKinds returns every operation in display order
func AllOperationKinds() []OperationKind {
	return []OperationKind{
		OperationDownload,
		OperationBGM,
		OperationThumbnail,
		OperationText,
		OperationWatermark,
	}
}

// String returns the string representation of OperationKind
func (k OperationKind) String() string {
	return string(k)
}

// Valid reports whether k is a known operation
func (k OperationKind) Valid() bool {
	switch k {
	case OperationDownload, OperationBGM, OperationThumbnail, OperationText, OperationWatermark:
		return true
	}
	return false
}

// Endpoint returns the POST path that processes this operation, or "" for unknown kinds
func (k OperationKind) Endpoint() string {
	switch k {
	case OperationDownload:
		return EndpointDownloadVideos
	case OperationBGM:
		return EndpointExtractBGM
	case OperationThumbnail:
		return EndpointExtractThumb
	case OperationText:
		return EndpointExtractText
	case OperationWatermark:
		return EndpointAddWatermark
	default:
		return ""
	}
}

// FileType returns the file_type value sent to temp-file endpoints
func (k OperationKind) FileType() string {
	switch k {
	case OperationBGM:
		return FileTypeBGM
	case OperationThumbnail:
		return FileTypeThumbnail
	default:
		return FileTypeVideo
	}
}
