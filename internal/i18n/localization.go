package i18n

import (
	"os"
	"strings"

	"github.com/ytget/fastmedia/internal/batch"
	"github.com/ytget/fastmedia/internal/form"
	"github.com/ytget/fastmedia/internal/view"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyFeatures          = "features"
	KeyURLs              = "urls"
	KeyURLPlaceholder    = "url_placeholder"
	KeyTimestamp         = "timestamp"
	KeyTimestampHint     = "timestamp_hint"
	KeyWatermarkText     = "watermark_text"
	KeyWatermarkTextHint = "watermark_text_hint"
	KeyWatermarkImage    = "watermark_image"
	KeyUploadImage       = "upload_image"
	KeyResetImage        = "reset_image"
	KeyNoImage           = "no_image"
	KeyResults           = "results"
	KeyLocalSource       = "local_source"
	KeyDownload          = "download"
	KeyCleanup           = "cleanup"
	KeyOpenInBrowser     = "open_in_browser"
	KeyShowMore          = "show_more"
	KeyShowLess          = "show_less"
	KeyCopyText          = "copy_text"
	KeyTextCopied        = "text_copied"
	KeySaveAll           = "save_all"
	KeyBatchTitle        = "batch_title"
	KeyDownloadSaved     = "download_saved"
	KeyDownloadFailed    = "download_failed"
	KeyDownloadStarted   = "download_started"
	KeyCleanupDone       = "cleanup_done"
	KeyCleanupFailed     = "cleanup_failed"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyServerURL         = "server_url"
	KeyDownloadDirectory = "download_directory"
	KeyBatchDelay        = "batch_delay"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
)

// FeatureKey returns the text key naming a feature card
func FeatureKey(kind string) string {
	return "feature_" + kind
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" || lang == "" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage maps the POSIX locale variables to a supported language
func systemLanguage() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			if strings.HasPrefix(strings.ToLower(v), "zh") {
				return "zh"
			}
			return "en"
		}
	}
	return "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// AlertText renders an alert as one line
func (l *Localization) AlertText(a view.Alert) string {
	text := l.GetText(a.Key)
	if a.Detail != "" {
		text += ": " + a.Detail
	}
	return text
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"zh": "中文",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "FastMedia",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyFeatures:          "Choose a feature",
		KeyURLs:              "Video URLs",
		KeyURLPlaceholder:    "Paste one or more video URLs, separated by commas or new lines",
		KeyTimestamp:         "Timestamp (seconds)",
		KeyTimestampHint:     "0",
		KeyWatermarkText:     "Watermark text",
		KeyWatermarkTextHint: "Text drawn on the video",
		KeyWatermarkImage:    "Watermark image",
		KeyUploadImage:       "Upload image",
		KeyResetImage:        "Remove image",
		KeyNoImage:           "No image uploaded",
		KeyResults:           "Results",
		KeyLocalSource:       "Local file",
		KeyDownload:          "Download",
		KeyCleanup:           "Clean up",
		KeyOpenInBrowser:     "Open in browser",
		KeyShowMore:          "Show more",
		KeyShowLess:          "Show less",
		KeyCopyText:          "Copy text",
		KeyTextCopied:        "Text copied to clipboard",
		KeySaveAll:           "Save all",
		KeyBatchTitle:        "Save all files",
		KeyDownloadSaved:     "File saved",
		KeyDownloadFailed:    "Download failed",
		KeyDownloadStarted:   "Download started",
		KeyCleanupDone:       "Temporary file cleaned up",
		KeyCleanupFailed:     "Cleanup failed",
		KeyErrorOpeningFile:  "Error opening file",
		KeyServerURL:         "Server URL",
		KeyDownloadDirectory: "Download Directory",
		KeyBatchDelay:        "Pause between batch saves (ms)",
		KeyAutoReveal:        "Reveal saved files",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyReveal:            "Reveal",
		KeyOpen:              "Open",

		FeatureKey("download"):  "Download video",
		FeatureKey("bgm"):       "Extract BGM",
		FeatureKey("thumbnail"): "Extract thumbnail",
		FeatureKey("text"):      "Extract text",
		FeatureKey("watermark"): "Add watermark",

		form.KeyStartDownload:       "Start Download",
		form.KeyExtractBGM:          "Extract BGM",
		form.KeyExtractThumbnail:    "Extract Thumbnail",
		form.KeyExtractText:         "Extract Text",
		form.KeyAddWatermark:        "Add Watermark",
		form.KeyStartProcessing:     "Start Processing",
		form.KeySelectFeatureAndURL: "Select a feature and enter URLs",
		form.KeySelectFeature:       "Select a feature",
		form.KeyEnterURL:            "Enter URLs",
		form.KeySelectFeatureFirst:  "Please select a feature first",
		form.KeyWatermarkRequired:   "Enter watermark text or upload an image",
		form.KeyProcessingComplete:  "Processing complete",
		form.KeyProcessingFailed:    "Processing failed",
		form.KeyUnsupportedImage:    "Unsupported image format",
		form.KeyUploadComplete:      "Image uploaded",
		form.KeyUploadFailed:        "Upload failed",
		form.KeyWatermarkImageReset: "Watermark image removed",

		view.KeyStatusSuccess:   "Success",
		view.KeyStatusFailed:    "Failed",
		view.KeyUnknownError:    "Unknown error",
		view.KeyDetailTitle:     "Title",
		view.KeyDetailPlatform:  "Platform",
		view.KeyDetailSize:      "Size",
		view.KeyDetailFile:      "File",
		view.KeyDetailTimestamp: "Timestamp",
		view.KeyDetailWatermark: "Watermark",
		batch.KeyBatchConfirm:   "Save these files to the download directory?",
		batch.KeyBatchStarted:   "Batch download started",
		batch.KeyBatchComplete:  "Batch download finished",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyAppTitle:          "FastMedia",
		KeySettings:          "设置",
		KeyFile:              "文件",
		KeyLanguage:          "语言",
		KeyFeatures:          "选择功能",
		KeyURLs:              "视频链接",
		KeyURLPlaceholder:    "粘贴一个或多个视频链接，用逗号或换行分隔",
		KeyTimestamp:         "时间点（秒）",
		KeyTimestampHint:     "0",
		KeyWatermarkText:     "水印文字",
		KeyWatermarkTextHint: "显示在视频上的文字",
		KeyWatermarkImage:    "水印图片",
		KeyUploadImage:       "上传图片",
		KeyResetImage:        "移除图片",
		KeyNoImage:           "未上传图片",
		KeyResults:           "处理结果",
		KeyLocalSource:       "本地文件",
		KeyDownload:          "下载",
		KeyCleanup:           "清理",
		KeyOpenInBrowser:     "在浏览器中打开",
		KeyShowMore:          "展开",
		KeyShowLess:          "收起",
		KeyCopyText:          "复制文本",
		KeyTextCopied:        "文本已复制",
		KeySaveAll:           "批量保存",
		KeyBatchTitle:        "批量保存文件",
		KeyDownloadSaved:     "文件已保存",
		KeyDownloadFailed:    "下载失败",
		KeyDownloadStarted:   "开始下载",
		KeyCleanupDone:       "临时文件已清理",
		KeyCleanupFailed:     "清理失败",
		KeyErrorOpeningFile:  "打开文件出错",
		KeyServerURL:         "服务器地址",
		KeyDownloadDirectory: "下载目录",
		KeyBatchDelay:        "批量保存间隔（毫秒）",
		KeyAutoReveal:        "保存后显示文件",
		KeySave:              "保存",
		KeyCancel:            "取消",
		KeyBrowse:            "浏览",
		KeySettingsSaved:     "设置已保存",
		KeyReveal:            "显示",
		KeyOpen:              "打开",

		FeatureKey("download"):  "视频下载",
		FeatureKey("bgm"):       "提取BGM",
		FeatureKey("thumbnail"): "提取封面",
		FeatureKey("text"):      "提取文字",
		FeatureKey("watermark"): "添加水印",

		form.KeyStartDownload:       "开始下载",
		form.KeyExtractBGM:          "提取BGM",
		form.KeyExtractThumbnail:    "提取封面",
		form.KeyExtractText:         "提取文字",
		form.KeyAddWatermark:        "添加水印",
		form.KeyStartProcessing:     "开始处理",
		form.KeySelectFeatureAndURL: "请选择功能并输入URL",
		form.KeySelectFeature:       "请选择功能",
		form.KeyEnterURL:            "请输入URL",
		form.KeySelectFeatureFirst:  "请先选择功能",
		form.KeyWatermarkRequired:   "请输入水印文字或上传水印图片",
		form.KeyProcessingComplete:  "处理完成",
		form.KeyProcessingFailed:    "处理失败",
		form.KeyUnsupportedImage:    "不支持的图片格式",
		form.KeyUploadComplete:      "图片上传成功",
		form.KeyUploadFailed:        "上传失败",
		form.KeyWatermarkImageReset: "已移除水印图片",

		view.KeyStatusSuccess:   "成功",
		view.KeyStatusFailed:    "失败",
		view.KeyUnknownError:    "未知错误",
		view.KeyDetailTitle:     "标题",
		view.KeyDetailPlatform:  "平台",
		view.KeyDetailSize:      "大小",
		view.KeyDetailFile:      "文件",
		view.KeyDetailTimestamp: "时间点",
		view.KeyDetailWatermark: "水印类型",
		batch.KeyBatchConfirm:   "确定将以下文件保存到下载目录？",
		batch.KeyBatchStarted:   "开始批量下载",
		batch.KeyBatchComplete:  "批量下载完成",
	}
}
