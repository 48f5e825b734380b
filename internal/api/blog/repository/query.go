package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			description,
			category,
			author,
			image_url,
			company,
			is_published,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:description,
			:category,
			:author,
			:image_url,
			:company,
			:is_published,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			description,
			category,
			author,
			image_url,
			company,
			is_published,
			created_at,
			updated_at
		FROM blogs
		WHERE id = :id
	`

	queryGetBlogsByCompany = `
		SELECT
			id,
			title,
			description,
			category,
			author,
			image_url,
			company,
			is_published,
			created_at,
			updated_at
		FROM blogs
		WHERE company = :company
		ORDER BY created_at DESC
	`

	queryGetPublishedBlogsByCompany = `
		SELECT
			id,
			title,
			description,
			category,
			author,
			image_url,
			company,
			is_published,
			created_at,
			updated_at
		FROM blogs
		WHERE company = :company
		  AND is_published = TRUE
		ORDER BY created_at DESC
	`

	queryGetCategoriesByCompany = `
		SELECT DISTINCT category
		FROM blogs
		WHERE company = :company
		  AND is_published = TRUE
		ORDER BY category ASC
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = CASE WHEN :title = '' THEN title ELSE :title END,
			description = CASE WHEN :description = '' THEN description ELSE :description END,
			category = CASE WHEN :category = '' THEN category ELSE :category END,
			image_url = CASE WHEN :image_url = '' THEN image_url ELSE :image_url END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryTogglePublish = `
		UPDATE blogs
		SET
			is_published = NOT is_published,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`
)
