package config

import "os"

func IsDebug() bool {
	return os.Getenv("BADEN_DEBUG") == "1"
}
