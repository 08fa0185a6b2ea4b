package output

import (
	"fmt"
	"os"
)

// NextPath returns path if nothing exists there yet, otherwise the first
// free of path.1, path.2, ... so earlier results are never overwritten.
func NextPath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%d", path, i)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
