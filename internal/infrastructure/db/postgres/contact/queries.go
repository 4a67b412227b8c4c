package contact

const contactColumns = `id, uuid, user_id, name, cpf, phone, street, number, complement, neighborhood, city, state, zip_code, latitude, longitude, created_at, updated_at`

const (
	SelectContactsAsc = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE user_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR cpf LIKE '%' || $2 || '%')
		ORDER BY name ASC
		LIMIT $3 OFFSET $4
	`
	SelectContactsDesc = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE user_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR cpf LIKE '%' || $2 || '%')
		ORDER BY name DESC
		LIMIT $3 OFFSET $4
	`
	CountContacts = `
		SELECT count(*)
		FROM contacts
		WHERE user_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR cpf LIKE '%' || $2 || '%')
	`
	SelectContactByUUID = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE user_id = $1 AND uuid = $2
	`
	SelectExistsWithCPF = `
		SELECT EXISTS (SELECT 1 FROM contacts WHERE user_id = $1 AND cpf = $2)
	`
	InsertContact = `
		INSERT INTO contacts (user_id, name, cpf, phone, street, number, complement, neighborhood, city, state, zip_code, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + contactColumns + `
	`
	UpdateContactByUUID = `
		UPDATE contacts
		SET name = $1,
		    phone = $2,
		    street = $3,
		    number = $4,
		    complement = $5,
		    neighborhood = $6,
		    city = $7,
		    state = $8,
		    zip_code = $9,
		    latitude = $10,
		    longitude = $11,
		    updated_at = now()
		WHERE user_id = $12 AND uuid = $13
		RETURNING ` + contactColumns + `
	`
	DeleteContactByUUID = `
		DELETE FROM contacts
		WHERE user_id = $1 AND uuid = $2
		RETURNING ` + contactColumns + `
	`
)
