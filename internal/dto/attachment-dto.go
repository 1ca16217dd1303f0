package dto

import "time"

type AttachmentResponseDTO struct {
	ID        uint64    `json:"id"`
	TaskID    int64     `json:"taskId"`
	FileName  string    `json:"fileName"`
	FileType  string    `json:"fileType"`
	FileSize  int64     `json:"fileSize"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}
