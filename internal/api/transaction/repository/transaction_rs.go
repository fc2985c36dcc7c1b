package transactionRepository

import (
	"ExpenseTracker/database"
	"ExpenseTracker/internal/api/transaction"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TransactionDB struct {
	ID          sql.NullInt64   `db:"id"`
	UserID      sql.NullInt64   `db:"user_id"`
	Type        sql.NullString  `db:"type"`
	Category    sql.NullString  `db:"category"`
	Amount      sql.NullFloat64 `db:"amount"`
	Date        sql.NullString  `db:"date"`
	Description sql.NullString  `db:"description"`
}

func (r *transactionRepository) Create(c context.Context, tx entity.Transaction) (int64, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"user_id":     tx.UserID,
		"type":        tx.Type,
		"category":    tx.Category,
		"amount":      tx.Amount,
		"date":        tx.Date,
		"description": tx.Description,
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Create")
		return 0, err
	}
	query = r.q.Rebind(query)

	var id int64
	if err := r.q.QueryRowxContext(c, query, args...).Scan(&id); err != nil {
		if database.IsCheckViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"type":       tx.Type,
			}).Warn("Transaction type rejected by check constraint")
			return 0, transaction.ErrInvalidTransactionType
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return 0, err
	}

	return id, nil
}

func (r *transactionRepository) GetByID(c context.Context, userID, id int64) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TransactionDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":     requestID,
				"transaction_id": id,
			}).Warn("GetByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(row), nil
}

func (r *transactionRepository) List(c context.Context, filter entity.TransactionFilter) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []TransactionDB

	where, argsKV := buildFilter(filter)
	argsKV["limit"] = filter.Limit
	argsKV["offset"] = filter.Offset

	query, args, err := sqlx.Named(queryTransactionColumns+where+" ORDER BY id LIMIT :limit OFFSET :offset", argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeTransaction(row))
	}

	return result, nil
}

func (r *transactionRepository) Count(c context.Context, filter entity.TransactionFilter) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	where, argsKV := buildFilter(filter)

	query, args, err := sqlx.Named(queryCountTransactions+where, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	var total int64
	if err := r.q.GetContext(c, &total, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Count execution err")
		return 0, err
	}

	return total, nil
}

func (r *transactionRepository) Update(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          tx.ID,
		"user_id":     tx.UserID,
		"type":        tx.Type,
		"category":    tx.Category,
		"amount":      tx.Amount,
		"date":        tx.Date,
		"description": tx.Description,
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Update")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		if database.IsCheckViolation(err) {
			return transaction.ErrInvalidTransactionType
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating transaction")
		return err
	}

	return r.expectAffected(requestID, result, tx.ID)
}

func (r *transactionRepository) Delete(c context.Context, userID, id int64) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for Delete")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting transaction")
		return err
	}

	return r.expectAffected(requestID, result, id)
}

func (r *transactionRepository) SumByType(c context.Context, userID int64, transactionType entity.TransactionType) (float64, error) {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"type":    string(transactionType),
		"user_id": userID,
	}

	query, args, err := sqlx.Named(querySumByType, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumByType named query preparation err")
		return 0, err
	}
	query = r.q.Rebind(query)

	var sum sql.NullFloat64
	if err := r.q.GetContext(c, &sum, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumByType execution err")
		return 0, err
	}

	return sum.Float64, nil
}

func (r *transactionRepository) expectAffected(requestID string, result sql.Result, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read affected rows")
		return err
	}

	if affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
		}).Warn("No transaction matched")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

// buildFilter returns a WHERE clause joining every set filter with AND.
// The user predicate is always present.
func buildFilter(filter entity.TransactionFilter) (string, map[string]interface{}) {
	conditions := []string{"user_id = :user_id"}
	argsKV := map[string]interface{}{
		"user_id": filter.UserID,
	}

	if filter.Type != "" {
		conditions = append(conditions, "type = :type")
		argsKV["type"] = filter.Type
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = :category")
		argsKV["category"] = filter.Category
	}
	if filter.StartDate != "" {
		conditions = append(conditions, "date >= :start_date")
		argsKV["start_date"] = filter.StartDate
	}
	if filter.EndDate != "" {
		conditions = append(conditions, "date <= :end_date")
		argsKV["end_date"] = filter.EndDate
	}

	return " WHERE " + strings.Join(conditions, " AND "), argsKV
}

func (r *transactionRepository) makeTransaction(row TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:          row.ID.Int64,
		UserID:      row.UserID.Int64,
		Type:        row.Type.String,
		Category:    row.Category.String,
		Amount:      row.Amount.Float64,
		Date:        row.Date.String,
		Description: row.Description.String,
	}
}
