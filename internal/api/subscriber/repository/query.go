package subscriberRepository

const (
	queryCreateSubscriber = `
		INSERT INTO subscribers (id, email, company, created_at)
		VALUES (:id, :email, :company, :created_at)
	`

	queryGetSubscriberByID = `
		SELECT id, email, company, created_at
		FROM subscribers
		WHERE id = :id
	`

	queryGetSubscribersByCompany = `
		SELECT id, email, company, created_at
		FROM subscribers
		WHERE company = :company
		ORDER BY created_at DESC
	`

	queryDeleteSubscriber = `
		DELETE FROM subscribers
		WHERE id = :id
	`
)
