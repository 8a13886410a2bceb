package constant

import "time"

// for profile store
const (
	DEFAULT_PROFILE_FILE = "cnsim-profile.yaml"
	DEFAULT_PROFILE_NAME = "default"
)

// for core simulator api
const (
	API_BASE_URL = "http://localhost:8081/core-simulator/v1"

	API_CONFIGURE = "/configure"
	API_START     = "/start"
	API_STOP      = "/stop"
	API_STATUS    = "/status"

	API_REQUEST_TIMEOUT = 10 * time.Second
)

// for shell
const (
	SHELL_PROMPT = "simctl > "
	SHELL_INTRO  = "Welcome to simctl. Type help or ? to list commands."

	STATUS_LOOP_INTERVAL = 3 * time.Second
)

// for logger
const (
	DEFAULT_LOG_LEVEL = "info"
	DEFAULT_LOG_FILE  = "cnsimctl.log"
)
