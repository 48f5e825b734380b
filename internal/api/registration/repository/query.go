package registrationRepository

const (
	queryCreateRequest = `
		INSERT INTO company_requests (id, fullname, company, email, business_type, status, created_at)
		VALUES (:id, :fullname, :company, :email, :business_type, :status, :created_at)
	`

	queryGetRequestByID = `
		SELECT id, fullname, company, email, business_type, status,
		       rejection_reason, reviewed_by, reviewed_at, created_at
		FROM company_requests
		WHERE id = :id
	`

	queryGetRequests = `
		SELECT id, fullname, company, email, business_type, status,
		       rejection_reason, reviewed_by, reviewed_at, created_at
		FROM company_requests
		ORDER BY created_at DESC
	`

	queryCountCompanyUsage = `
		SELECT (SELECT COUNT(*) FROM users WHERE company = :company)
		     + (SELECT COUNT(*) FROM company_requests WHERE company = :company AND status != 'rejected')
	`

	queryReviewRequest = `
		UPDATE company_requests
		SET status           = :status,
		    rejection_reason = :rejection_reason,
		    reviewed_by      = :reviewed_by,
		    reviewed_at      = :reviewed_at
		WHERE id = :id
		  AND status = 'pending'
	`

	queryCreateUser = `
		INSERT INTO users (id, email, password, company, role, created_at, updated_at)
		VALUES (:id, :email, :password, :company, :role, :created_at, :updated_at)
	`
)
