package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"service-tasks/internal/entities"
	"service-tasks/pkg/constants"
	apperrors "service-tasks/pkg/errors"
)

const taskTable = "tasks"

// Колонки совпадают с db-тегами entities.Task.
var taskColumns = []string{
	"id", "status", "urgent_request",
	"client", "address", "equipment", "equipment_serial", "engineer1", "engineer2",
	"region", "payment_type", "request_desc", "work", "invoice", "comments",
	"request_date", "work_date", "payment_date",
	"oil_type", "oil_used", "oil_price", "oil_total",
	"filter_name", "filter_count", "filter_price", "filter_sum",
	"air_filter_name", "air_filter_count", "air_filter_price", "air_filter_sum",
	"antifreeze_type", "antifreeze_l", "antifreeze_sum",
	"transport_sum", "other_materials", "other_sum", "work_price",
	"service_bonus", "service_total",
	"approved_by_warehouse", "warehouse_comment", "warehouse_rejection_date", "warehouse_rejection_user",
	"approved_by_accountant", "accountant_comment", "accountant_rejection_date", "accountant_rejection_user",
	"approved_by_regional_manager", "regional_manager_comment", "regional_manager_rejection_date", "regional_manager_rejection_user",
	"bonus_approval_date", "version", "created_at", "updated_at",
}

var taskReturning = "RETURNING " + strings.Join(taskColumns, ", ")

// TaskFilter - условия выборки заявок на стороне БД.
type TaskFilter struct {
	Status string
	// Пусто или "Україна" - все регионы.
	Region string
}

type TaskRepositoryInterface interface {
	List(ctx context.Context, filter TaskFilter) ([]entities.Task, error)
	FindByID(ctx context.Context, id int64) (*entities.Task, error)
	FindForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*entities.Task, error)
	Create(ctx context.Context, tx pgx.Tx, task *entities.Task) (*entities.Task, error)
	Update(ctx context.Context, tx pgx.Tx, task *entities.Task) (*entities.Task, error)
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}

type TaskRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTaskRepository(storage *pgxpool.Pool, logger *zap.Logger) TaskRepositoryInterface {
	return &TaskRepository{storage: storage, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildTaskListQuery(filter TaskFilter) sq.SelectBuilder {
	builder := psql.Select(taskColumns...).From(taskTable)
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Region != "" && filter.Region != constants.RegionAll {
		builder = builder.Where(sq.Eq{"region": filter.Region})
	}
	return builder.OrderBy("id DESC")
}

func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]entities.Task, error) {
	query, args, err := buildTaskListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки запроса списка заявок: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	tasks, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.Task])
	if err != nil {
		r.logger.Error("ошибка чтения списка заявок", zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) findOne(ctx context.Context, q Querier, id int64, forUpdate bool) (*entities.Task, error) {
	builder := psql.Select(taskColumns...).From(taskTable).Where(sq.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectTask(rows)
}

func collectTask(rows pgx.Rows) (*entities.Task, error) {
	task, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[entities.Task])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования заявки: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*entities.Task, error) {
	return r.findOne(ctx, r.storage, id, false)
}

// FindForUpdate блокирует строку до конца транзакции.
func (r *TaskRepository) FindForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*entities.Task, error) {
	return r.findOne(ctx, pickQuerier(r.storage, tx), id, tx != nil)
}

// taskValues - записываемые колонки. id, version и отметки времени ведёт БД.
func taskValues(t *entities.Task) map[string]interface{} {
	return map[string]interface{}{
		"status":                          t.Status,
		"urgent_request":                  t.UrgentRequest,
		"client":                          t.Client,
		"address":                         t.Address,
		"equipment":                       t.Equipment,
		"equipment_serial":                t.EquipmentSerial,
		"engineer1":                       t.Engineer1,
		"engineer2":                       t.Engineer2,
		"region":                          t.Region,
		"payment_type":                    t.PaymentType,
		"request_desc":                    t.RequestDesc,
		"work":                            t.Work,
		"invoice":                         t.Invoice,
		"comments":                        t.Comments,
		"request_date":                    t.RequestDate,
		"work_date":                       t.Date,
		"payment_date":                    t.PaymentDate,
		"oil_type":                        t.OilType,
		"oil_used":                        t.OilUsed,
		"oil_price":                       t.OilPrice,
		"oil_total":                       t.OilTotal,
		"filter_name":                     t.FilterName,
		"filter_count":                    t.FilterCount,
		"filter_price":                    t.FilterPrice,
		"filter_sum":                      t.FilterSum,
		"air_filter_name":                 t.AirFilterName,
		"air_filter_count":                t.AirFilterCount,
		"air_filter_price":                t.AirFilterPrice,
		"air_filter_sum":                  t.AirFilterSum,
		"antifreeze_type":                 t.AntifreezeType,
		"antifreeze_l":                    t.AntifreezeL,
		"antifreeze_sum":                  t.AntifreezeSum,
		"transport_sum":                   t.TransportSum,
		"other_materials":                 t.OtherMaterials,
		"other_sum":                       t.OtherSum,
		"work_price":                      t.WorkPrice,
		"service_bonus":                   t.ServiceBonus,
		"service_total":                   t.ServiceTotal,
		"approved_by_warehouse":           t.ApprovedByWarehouse,
		"warehouse_comment":               t.WarehouseComment,
		"warehouse_rejection_date":        t.WarehouseRejectionDate,
		"warehouse_rejection_user":        t.WarehouseRejectionUser,
		"approved_by_accountant":          t.ApprovedByAccountant,
		"accountant_comment":              t.AccountantComment,
		"accountant_rejection_date":       t.AccountantRejectionDate,
		"accountant_rejection_user":       t.AccountantRejectionUser,
		"approved_by_regional_manager":    t.ApprovedByRegionalManager,
		"regional_manager_comment":        t.RegionalManagerComment,
		"regional_manager_rejection_date": t.RegionalManagerRejectionDate,
		"regional_manager_rejection_user": t.RegionalManagerRejectionUser,
		"bonus_approval_date":             t.BonusApprovalDate,
	}
}

func (r *TaskRepository) Create(ctx context.Context, tx pgx.Tx, task *entities.Task) (*entities.Task, error) {
	query, args, err := psql.Insert(taskTable).SetMap(taskValues(task)).Suffix(taskReturning).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := pickQuerier(r.storage, tx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectTask(rows)
}

func buildTaskUpdate(task *entities.Task) sq.UpdateBuilder {
	return psql.Update(taskTable).
		SetMap(taskValues(task)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": task.ID, "version": task.Version}).
		Suffix(taskReturning)
}

// Update сохраняет заявку, если её версия в БД совпадает с task.Version.
// Иначе - ErrConflict (или ErrNotFound, если заявки нет).
func (r *TaskRepository) Update(ctx context.Context, tx pgx.Tx, task *entities.Task) (*entities.Task, error) {
	query, args, err := buildTaskUpdate(task).ToSql()
	if err != nil {
		return nil, err
	}
	q := pickQuerier(r.storage, tx)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	updated, err := collectTask(rows)
	if !errors.Is(err, apperrors.ErrNotFound) {
		return updated, err
	}

	var exists bool
	if err := q.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM tasks WHERE id = $1)", task.ID).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		r.logger.Info("устаревшая версия заявки", zap.Int64("taskId", task.ID), zap.Int64("version", task.Version))
		return nil, apperrors.ErrConflict
	}
	return nil, apperrors.ErrNotFound
}

func (r *TaskRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	result, err := pickQuerier(r.storage, tx).Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
