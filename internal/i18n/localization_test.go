package i18n

import (
	"testing"

	"github.com/ytget/fastmedia/internal/form"
	"github.com/ytget/fastmedia/internal/view"
)

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(form.KeyStartDownload); got != "Start Download" {
		t.Errorf("Expected English label, got %q", got)
	}
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Unknown key should fall back to itself, got %q", got)
	}

	l.SetLanguage("zh")
	if l.GetCurrentLanguage() != "zh" {
		t.Fatalf("Expected zh, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(form.KeyStartDownload); got != "开始下载" {
		t.Errorf("Expected Chinese label, got %q", got)
	}

	l.SetLanguage("fr")
	if l.GetCurrentLanguage() != "zh" {
		t.Errorf("Unsupported language should keep zh, got %s", l.GetCurrentLanguage())
	}
}

func TestSystemLanguage(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "zh_CN.UTF-8")
	if got := systemLanguage(); got != "zh" {
		t.Errorf("Expected zh from LANG, got %s", got)
	}

	t.Setenv("LC_ALL", "en_US.UTF-8")
	if got := systemLanguage(); got != "en" {
		t.Errorf("LC_ALL should win over LANG, got %s", got)
	}

	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "")
	if got := systemLanguage(); got != "en" {
		t.Errorf("Expected en without locale, got %s", got)
	}

	l := NewLocalization()
	t.Setenv("LANG", "zh_TW")
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "zh" {
		t.Errorf("system should follow the locale, got %s", l.GetCurrentLanguage())
	}
}

func TestAlertText(t *testing.T) {
	l := NewLocalization()

	if got := l.AlertText(view.Success(form.KeyProcessingComplete, "")); got != "Processing complete" {
		t.Errorf("Unexpected alert text %q", got)
	}
	if got := l.AlertText(view.Error(form.KeyProcessingFailed, "server down")); got != "Processing failed: server down" {
		t.Errorf("Unexpected alert text %q", got)
	}
}

func TestFeatureLabelsExist(t *testing.T) {
	l := NewLocalization()
	for _, kind := range []string{"download", "bgm", "thumbnail", "text", "watermark"} {
		key := FeatureKey(kind)
		if l.GetText(key) == key {
			t.Errorf("Missing label for feature %s", kind)
		}
	}
}
