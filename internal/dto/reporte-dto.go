package dto

type ExportRequestDTO struct {
	Type string `json:"type"`
}

type ExportResultDTO struct {
	Filename string `json:"filename"`
	Message  string `json:"message"`
}
