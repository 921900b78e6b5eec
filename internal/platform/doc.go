// Package platform provides OS helpers for the desktop client: the downloads
// directory, safe local file names, and revealing or opening saved files.
package platform
