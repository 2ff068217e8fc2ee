//go:build !unix

package compose

import "os"

func secureGetenv(key string) string {
	return os.Getenv(key)
}
