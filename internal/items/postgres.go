package items

import (
	"context"
	"database/sql"
)

var _ Store = (*PGStore)(nil)

// PGStore implements Store using PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, item *Item) error {
	_, err := s.db.ExecContext(ctx,
		`insert into items(id, owner, name, price, description, image_url, created_at)
		 values($1,$2,$3,$4,$5,$6,$7)`,
		item.ID, item.Owner, item.Name, item.Price, item.Description, item.ImageURL, item.CreatedAt,
	)
	return err
}

func (s *PGStore) ListByOwner(ctx context.Context, owner string) ([]*Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, owner, name, price, description, image_url, created_at
		 from items where owner=$1 order by created_at asc`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Owner, &item.Name, &item.Price, &item.Description, &item.ImageURL, &item.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

func (s *PGStore) Delete(ctx context.Context, owner, id string) error {
	res, err := s.db.ExecContext(ctx,
		`delete from items where id=$1 and owner=$2`, id, owner)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
