package logger

const (
	CLI_TAG = "CLI"

	CONFIG_TAG = "CONFIG"
	SHELL_TAG  = "SHELL"
	API_TAG    = "API"
)
