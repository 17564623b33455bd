package sale

const (
	SelectSales = `
		SELECT s.id, s.uuid, s.client_id, s.client_name, s.client_expedition_date, s.client_expedition_place,
		       s.phone, s.address, s.product_imei_or_serial, s.product_description, s.product_price,
		       s.payment_plan, u.uuid, u.username, s.sale_date
		FROM sales s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.id
	`
	SelectSaleByUUID = `
		SELECT s.id, s.uuid, s.client_id, s.client_name, s.client_expedition_date, s.client_expedition_place,
		       s.phone, s.address, s.product_imei_or_serial, s.product_description, s.product_price,
		       s.payment_plan, u.uuid, u.username, s.sale_date
		FROM sales s
		JOIN users u ON u.id = s.user_id
		WHERE s.uuid = $1
	`
	InsertSale = `
		INSERT INTO sales (uuid, client_id, client_name, client_expedition_date, client_expedition_place,
		                   phone, address, product_imei_or_serial, product_description, product_price,
		                   payment_plan, user_id, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	UpdateSaleByUUID = `
		UPDATE sales
		SET client_name = $1,
		    client_expedition_date = $2,
		    client_expedition_place = $3,
		    phone = $4,
		    address = $5,
		    product_imei_or_serial = $6,
		    product_description = $7,
		    product_price = $8,
		    payment_plan = $9
		WHERE uuid = $10
	`
	DeleteSaleByUUID = `DELETE FROM sales WHERE uuid = $1`
)
