package config

type UploadConfig struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
	PathPrefix       string
}

var UploadContexts = map[string]UploadConfig{
	// Фото с камеры телефона, сканы актов и накладных.
	"task_file": {
		AllowedMimeTypes: []string{
			"image/jpeg", "image/png", "image/webp", "image/heic",
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		},
		MaxSizeMB:  25,
		PathPrefix: "tasks",
	},
}
