package ui

// Package ui contains the Fyne-based desktop user interface for FastMedia.
// It owns the form state, draws the result view tree, and wires clicks to the
// form controller, the save service and the batch downloader. All UI strings
// are localized via i18n.Localization.
