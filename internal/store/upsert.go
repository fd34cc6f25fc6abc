package store

import (
	"database/sql"
	"errors"

	"edivaldoleitao/tracksave/internal/scraper"
	cerr "edivaldoleitao/tracksave/pkg/errors"
)

// UpsertResult reports what one Upsert actually changed.
type UpsertResult struct {
	ProductID      int64
	ProductStoreID int64
	Created        bool
	PriceAppended  bool
}

// Upsert records one scraped product: find-or-create the product by identity
// hash, find-or-create its store listing, refresh the mutable listing fields
// (available, rating) and append a price point iff the price changed since
// the latest recorded one. Re-running the same scrape is a no-op apart from
// the mutable field refresh.
func (s *Store) Upsert(p scraper.ScrapedProduct) (UpsertResult, error) {
	var result UpsertResult

	tx, err := s.db.Begin()
	if err != nil {
		return result, cerr.NewStore(p.Category.String(), "begin upsert", err)
	}
	defer tx.Rollback()

	hash := identityHash(p.Name, p.URL)

	var productID int64
	err = tx.QueryRow(`SELECT id FROM products WHERE identity_hash = ?`, hash).Scan(&productID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.Exec(
			`INSERT INTO products (identity_hash, name, category, brand, description, image_url)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			hash, p.Name, p.Category.String(), p.Brand, p.Description, p.ImageURL)
		if err != nil {
			return result, cerr.NewStore(p.Category.String(), "insert product", err)
		}
		productID, err = res.LastInsertId()
		if err != nil {
			return result, cerr.NewStore(p.Category.String(), "product id", err)
		}
		result.Created = true
	case err != nil:
		return result, cerr.NewStore(p.Category.String(), "select product", err)
	}
	result.ProductID = productID

	available := 0
	if p.Available {
		available = 1
	}

	var storeID int64
	err = tx.QueryRow(
		`SELECT id FROM product_stores WHERE product_id = ? AND url_product = ?`,
		productID, p.URL).Scan(&storeID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.Exec(
			`INSERT INTO product_stores (product_id, store, url_product, available, rating)
			 VALUES (?, ?, ?, ?, ?)`,
			productID, p.Store, p.URL, available, p.Rating)
		if err != nil {
			return result, cerr.NewStore(p.Category.String(), "insert product store", err)
		}
		storeID, err = res.LastInsertId()
		if err != nil {
			return result, cerr.NewStore(p.Category.String(), "product store id", err)
		}
	case err != nil:
		return result, cerr.NewStore(p.Category.String(), "select product store", err)
	default:
		// only the volatile listing fields are refreshed on revisit
		if _, err := tx.Exec(
			`UPDATE product_stores SET available = ?, rating = ? WHERE id = ?`,
			available, p.Rating, storeID); err != nil {
			return result, cerr.NewStore(p.Category.String(), "update product store", err)
		}
	}
	result.ProductStoreID = storeID

	appended, err := appendPriceIfChanged(tx, storeID, p.Value, p.CollectionDate)
	if err != nil {
		return result, cerr.NewStore(p.Category.String(), "append price point", err)
	}
	result.PriceAppended = appended

	if err := tx.Commit(); err != nil {
		return result, cerr.NewStore(p.Category.String(), "commit upsert", err)
	}
	return result, nil
}

// appendPriceIfChanged appends a price point unless the latest recorded
// value is already equal. Comparison is exact on the normalized decimal
// string; the normalizer always emits the retailer's two decimals, so
// "10.00" never aliases with "10.0".
func appendPriceIfChanged(tx *sql.Tx, storeID int64, value, collectionDate string) (bool, error) {
	var latest string
	err := tx.QueryRow(
		`SELECT value FROM price_points
		 WHERE product_store_id = ?
		 ORDER BY collection_date DESC, id DESC
		 LIMIT 1`, storeID).Scan(&latest)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// first sighting, always recorded
	case err != nil:
		return false, err
	case latest == value:
		return false, nil
	}

	_, err = tx.Exec(
		`INSERT INTO price_points (product_store_id, value, collection_date)
		 VALUES (?, ?, ?)`, storeID, value, collectionDate)
	if err != nil {
		return false, err
	}
	return true, nil
}

// PriceHistory returns the recorded values for a product-store pair, newest
// first.
func (s *Store) PriceHistory(productStoreID int64) ([]PricePoint, error) {
	rows, err := s.db.Query(
		`SELECT id, value, collection_date FROM price_points
		 WHERE product_store_id = ?
		 ORDER BY collection_date DESC, id DESC`, productStoreID)
	if err != nil {
		return nil, cerr.NewStore("store", "price history", err)
	}
	defer rows.Close()

	var points []PricePoint
	for rows.Next() {
		var pt PricePoint
		if err := rows.Scan(&pt.ID, &pt.Value, &pt.CollectionDate); err != nil {
			return nil, cerr.NewStore("store", "scan price point", err)
		}
		points = append(points, pt)
	}
	return points, rows.Err()
}

// PricePoint is one recorded price change.
type PricePoint struct {
	ID             int64
	Value          string
	CollectionDate string
}
