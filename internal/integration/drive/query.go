package drive

import (
	"fmt"
	"strings"
)

const (
	listFields  = "nextPageToken, files(id, name, mimeType, modifiedTime)"
	listOrderBy = "folder,name"
)

var queryEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// BuildChildrenQuery builds the Drive search query selecting the non-trashed
// children of folderID, optionally restricted to mimeTypes.
func BuildChildrenQuery(folderID string, mimeTypes []string) string {
	q := fmt.Sprintf("'%s' in parents and trashed = false", queryEscaper.Replace(folderID))
	if len(mimeTypes) == 0 {
		return q
	}

	clauses := make([]string, 0, len(mimeTypes))
	for _, mt := range mimeTypes {
		clauses = append(clauses, fmt.Sprintf("mimeType = '%s'", queryEscaper.Replace(mt)))
	}

	return q + " and (" + strings.Join(clauses, " or ") + ")"
}
