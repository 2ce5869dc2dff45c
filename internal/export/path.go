package export

import (
	"fmt"
	"strings"

	"github.com/llehouerou/xspf/internal/trackname"
)

// Name builds the export filename for one track: the zero-padded
// playlist ordinal, the filename-safe type abbreviation with the take
// index, the descriptive name and the extension.
// Example: Name(info, 3, 2) -> "03-VL01-tranquil.mp3".
func Name(info trackname.Info, ordinal, width int) string {
	return fmt.Sprintf("%0*d-%s%02d-%s.%s",
		width, ordinal,
		info.Type.FileAbbrev(), info.Index,
		sanitizeFilename(info.Name),
		info.Ext)
}

// sanitizeFilename replaces illegal characters for FAT32 compatibility.
func sanitizeFilename(s string) string {
	// Characters not allowed in FAT32: / \ : * ? " < > |
	replacer := strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"\"", "-",
		"<", "-",
		">", "-",
		"|", "-",
	)
	result := replacer.Replace(s)

	// Truncate to 200 chars for FAT32 safety
	if len(result) > 200 {
		result = result[:200]
	}

	return result
}
