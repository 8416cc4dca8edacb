package entity

// MIME types known to the service
const (
	MimeTypeFolder     = "application/vnd.google-apps.folder"
	MimeTypeGoogleDoc  = "application/vnd.google-apps.document"
	MimeTypePlainText  = "text/plain"
	MimeTypeDOCX       = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTypePPTX       = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	MimeTypePDF        = "application/pdf"
	MimeTypeLegacyWord = "application/msword"
)

// FileDescriptor identifies one item in the storage tree
type FileDescriptor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`

	// ModifiedTime is only used to version cached extractions
	ModifiedTime string `json:"-"`
}

func (f FileDescriptor) IsFolder() bool {
	return f.MimeType == MimeTypeFolder
}

// ExtractedDocument is the outcome of extracting one file
type ExtractedDocument struct {
	SourceName string
	Text       string
	OK         bool
}
