package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			user_id,
			type,
			category,
			amount,
			date,
			description
		) VALUES (
			:user_id,
			:type,
			:category,
			:amount,
			:date,
			:description
		)
		RETURNING id
	`

	queryTransactionColumns = `
		SELECT
			id,
			user_id,
			type,
			category,
			amount,
			date,
			description
		FROM transactions
	`

	queryGetTransactionByID = queryTransactionColumns + `
		WHERE id = :id AND user_id = :user_id
	`

	queryCountTransactions = `
		SELECT COUNT(*) FROM transactions
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			type = :type,
			category = :category,
			amount = :amount,
			date = :date,
			description = :description
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id AND user_id = :user_id
	`

	querySumByType = `
		SELECT SUM(amount) FROM transactions
		WHERE type = :type AND user_id = :user_id
	`
)
