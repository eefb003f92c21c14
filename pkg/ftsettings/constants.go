package ftsettings

import (
	"os"
	"path/filepath"
)

const UserDir = "~/.filepicker"
const settingsFileName = "picker.yaml"

var osUserHomeDir = os.UserHomeDir

func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

// DefaultSettingsFilePath returns the settings file in the user dir.
func DefaultSettingsFilePath() (string, error) {
	userDir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userDir, settingsFileName), nil
}
