package commentRepository

const (
	queryCreateComment = `
		INSERT INTO comments (
			id,
			blog_id,
			name,
			content,
			is_approved,
			created_at
		) VALUES (
			:id,
			:blog_id,
			:name,
			:content,
			:is_approved,
			:created_at
		)
	`

	queryGetCommentByID = `
		SELECT
			c.id,
			c.blog_id,
			c.name,
			c.content,
			c.is_approved,
			c.created_at,
			b.title AS blog_title,
			b.company AS blog_company
		FROM comments c
		JOIN blogs b ON b.id = c.blog_id
		WHERE c.id = :id
	`

	queryGetApprovedByBlog = `
		SELECT
			c.id,
			c.blog_id,
			c.name,
			c.content,
			c.is_approved,
			c.created_at,
			b.title AS blog_title,
			b.company AS blog_company
		FROM comments c
		JOIN blogs b ON b.id = c.blog_id
		WHERE c.blog_id = :blog_id
		  AND c.is_approved = TRUE
		ORDER BY c.created_at DESC
	`

	queryGetByCompany = `
		SELECT
			c.id,
			c.blog_id,
			c.name,
			c.content,
			c.is_approved,
			c.created_at,
			b.title AS blog_title,
			b.company AS blog_company
		FROM comments c
		JOIN blogs b ON b.id = c.blog_id
		WHERE b.company = :company
		ORDER BY c.created_at DESC
	`

	queryGetBlogMeta = `
		SELECT
			company,
			title,
			is_published
		FROM blogs
		WHERE id = :id
	`

	queryApproveComment = `
		UPDATE comments
		SET is_approved = TRUE
		WHERE id = :id
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`
)
