package entity

// NoSupportedFilesAnswer is returned instead of a model answer when the folder
// holds nothing that can be extracted.
const NoSupportedFilesAnswer = "No supported files were found in this folder."

type ConsultRequest struct {
	FolderID string `json:"folderId"`
	Question string `json:"question"`
}

type ConsultResponse struct {
	Answer string `json:"answer"`
}

// ConsultResult is what the consult use case hands back to its callers
type ConsultResult struct {
	ConsultationID string
	Answer         string
	FileCount      int
	Warnings       []string
}
