package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"service-tasks/config"
	"service-tasks/internal/dto"
	"service-tasks/internal/entities"
	"service-tasks/internal/repositories"
	"service-tasks/pkg/constants"
	apperrors "service-tasks/pkg/errors"
	"service-tasks/pkg/filestorage"
	"service-tasks/pkg/utils"
)

// AttachmentServiceInterface - вложения к заявкам.
type AttachmentServiceInterface interface {
	Upload(ctx context.Context, taskID int64, fileHeader *multipart.FileHeader) (*dto.AttachmentResponseDTO, error)
	GetByTaskID(ctx context.Context, taskID int64) ([]dto.AttachmentResponseDTO, error)
	Delete(ctx context.Context, attachmentID uint64) error
}

type AttachmentService struct {
	txManager   repositories.TxManagerInterface
	repo        repositories.AttachmentRepositoryInterface
	historyRepo repositories.TaskHistoryRepositoryInterface
	tasks       TaskServiceInterface
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewAttachmentService(
	txManager repositories.TxManagerInterface,
	repo repositories.AttachmentRepositoryInterface,
	historyRepo repositories.TaskHistoryRepositoryInterface,
	tasks TaskServiceInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) *AttachmentService {
	return &AttachmentService{
		txManager:   txManager,
		repo:        repo,
		historyRepo: historyRepo,
		tasks:       tasks,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func toAttachmentDTO(a entities.Attachment) dto.AttachmentResponseDTO {
	return dto.AttachmentResponseDTO{
		ID:        a.ID,
		TaskID:    a.TaskID,
		FileName:  a.FileName,
		FileType:  a.FileType,
		FileSize:  a.FileSize,
		URL:       filestorage.URL(a.FilePath),
		CreatedAt: a.CreatedAt,
	}
}

// Upload проверяет тип файла по содержимому, сохраняет его и пишет запись в историю.
func (s *AttachmentService) Upload(ctx context.Context, taskID int64, fileHeader *multipart.FileHeader) (*dto.AttachmentResponseDTO, error) {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл: %w", err)
	}
	defer src.Close()

	uploadContext := constants.UploadContextTaskFile.String()
	mimeType, err := utils.ValidateFile(fileHeader, src, uploadContext)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), apperrors.ErrBadRequest, nil)
	}

	filePath, err := s.fileStorage.Save(src, fileHeader.Filename, config.UploadContexts[uploadContext].PathPrefix)
	if err != nil {
		return nil, fmt.Errorf("не удалось сохранить файл: %w", err)
	}

	attachment := entities.Attachment{
		TaskID:   taskID,
		UserID:   claims.UserID,
		FileName: fileHeader.Filename,
		FilePath: filePath,
		FileType: mimeType,
		FileSize: fileHeader.Size,
	}
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		id, err := s.repo.Create(ctx, tx, &attachment)
		if err != nil {
			return err
		}
		attachment.ID = id
		return s.historyRepo.Create(ctx, tx, entities.TaskHistory{
			TaskID:    taskID,
			UserID:    claims.UserID,
			UserName:  claims.DisplayName(),
			EventType: entities.HistoryEventFile,
			NewValue:  null.StringFrom(fileHeader.Filename),
			TxID:      uuid.NewString(),
		})
	})
	if err != nil {
		if delErr := s.fileStorage.Delete(filePath); delErr != nil {
			s.logger.Warn("не удалось удалить файл после ошибки", zap.String("path", filePath), zap.Error(delErr))
		}
		return nil, err
	}

	s.logger.Info("файл прикреплен к заявке",
		zap.Int64("taskId", taskID),
		zap.String("file", fileHeader.Filename),
		zap.String("type", mimeType))

	stored, err := s.repo.FindByID(ctx, attachment.ID)
	if err != nil {
		result := toAttachmentDTO(attachment)
		return &result, nil
	}
	result := toAttachmentDTO(*stored)
	return &result, nil
}

func (s *AttachmentService) GetByTaskID(ctx context.Context, taskID int64) ([]dto.AttachmentResponseDTO, error) {
	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	attachments, err := s.repo.FindAllByTaskID(ctx, taskID)
	if err != nil {
		s.logger.Error("не удалось получить вложения заявки", zap.Int64("taskId", taskID), zap.Error(err))
		return nil, err
	}
	out := make([]dto.AttachmentResponseDTO, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, toAttachmentDTO(a))
	}
	return out, nil
}

// Delete удаляет вложение из БД и с диска. Удалить может автор файла или администратор.
func (s *AttachmentService) Delete(ctx context.Context, attachmentID uint64) error {
	claims, err := utils.GetClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	attachment, err := s.repo.FindByID(ctx, attachmentID)
	if err != nil {
		return err
	}
	if _, err := s.tasks.GetByID(ctx, attachment.TaskID); err != nil {
		return err
	}
	if !utils.IsAdmin(claims.Role) && attachment.UserID != claims.UserID {
		return apperrors.ErrForbidden
	}

	if err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		return s.repo.Delete(ctx, tx, attachmentID)
	}); err != nil {
		return err
	}
	if err := s.fileStorage.Delete(attachment.FilePath); err != nil {
		s.logger.Warn("файл вложения не удален с диска", zap.String("path", attachment.FilePath), zap.Error(err))
	}
	s.logger.Info("вложение удалено", zap.Uint64("attachmentId", attachmentID), zap.String("login", claims.Login))
	return nil
}
