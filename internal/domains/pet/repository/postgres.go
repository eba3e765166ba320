package repository

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"petregistry-backend/internal/domains/pet/model"
	"petregistry-backend/pkg/cache"
)

const (
	petCacheTTL = 5 * time.Minute

	petColumns = `id, name, species, breed, age, birthdate, weight, nickname,
		owner, registration_date, photo_url, deleted_at`
)

// postgresRepository - raw SQL with pgxpool, read-through cache on FindByID.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

func petCacheKey(id string) string {
	return "pet:" + id
}

func (r *postgresRepository) Save(ctx context.Context, pet *model.Pet) (*model.Pet, error) {
	saved := *pet
	saved.ID = uuid.NewString()

	query := `
		INSERT INTO pets (id, name, species, breed, age, birthdate, weight, nickname,
			owner, registration_date, photo_url, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		saved.ID,
		saved.Name,
		string(saved.Species),
		saved.Breed,
		saved.Age,
		saved.Birthdate,
		nullDecimal(saved.Weight),
		saved.Nickname,
		saved.Owner,
		saved.RegistrationDate,
		saved.PhotoURL,
		saved.DeletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert pet: %w", err)
	}

	return &saved, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*model.Pet, error) {
	var cached model.Pet
	if found, err := r.cache.Get(ctx, petCacheKey(id), &cached); err != nil {
		// Cache failure is non-critical, fall through to the database.
		log.Warn().Err(err).Str("pet_id", id).Msg("Pet cache read failed")
	} else if found {
		return &cached, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM pets WHERE id = $1`, petColumns)

	row := r.pool.QueryRow(ctx, query, id)
	pet, err := scanPet(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select pet %s: %w", id, err)
	}

	if err := r.cache.Set(ctx, petCacheKey(id), pet, petCacheTTL); err != nil {
		log.Warn().Err(err).Str("pet_id", id).Msg("Pet cache write failed")
	}

	return pet, nil
}

func (r *postgresRepository) Update(ctx context.Context, pet *model.Pet) (*model.Pet, error) {
	// Identity columns (owner, registration_date) are deliberately absent
	// from the SET list.
	query := fmt.Sprintf(`
		UPDATE pets
		SET name = $2, species = $3, breed = $4, age = $5, birthdate = $6,
			weight = $7, nickname = $8, photo_url = $9
		WHERE id = $1
		RETURNING %s`, petColumns)

	row := r.pool.QueryRow(ctx, query,
		pet.ID,
		pet.Name,
		string(pet.Species),
		pet.Breed,
		pet.Age,
		pet.Birthdate,
		nullDecimal(pet.Weight),
		pet.Nickname,
		pet.PhotoURL,
	)

	updated, err := scanPet(row)
	if err != nil {
		return nil, fmt.Errorf("update pet %s: %w", pet.ID, err)
	}

	r.invalidate(ctx, pet.ID)
	return updated, nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE pets SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("soft delete pet %s: %w", id, err)
	}

	r.invalidate(ctx, id)
	return nil
}

// FindAllByOwner streams rows lazily: the query runs on first pull and a
// mid-stream failure surfaces as a final non-nil error after the rows
// already emitted.
func (r *postgresRepository) FindAllByOwner(ctx context.Context, owner string) iter.Seq2[model.Pet, error] {
	query := fmt.Sprintf(`
		SELECT %s FROM pets
		WHERE owner = $1 AND deleted_at IS NULL
		ORDER BY registration_date DESC, id`, petColumns)

	return func(yield func(model.Pet, error) bool) {
		rows, err := r.pool.Query(ctx, query, owner)
		if err != nil {
			yield(model.Pet{}, fmt.Errorf("select pets by owner: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			pet, err := scanPet(rows)
			if err != nil {
				yield(model.Pet{}, fmt.Errorf("scan pet row: %w", err))
				return
			}
			if !yield(*pet, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(model.Pet{}, fmt.Errorf("pet rows: %w", err))
		}
	}
}

func (r *postgresRepository) CountByOwner(ctx context.Context, owner string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM pets WHERE owner = $1 AND deleted_at IS NULL`

	if err := r.pool.QueryRow(ctx, query, owner).Scan(&count); err != nil {
		return 0, fmt.Errorf("count pets by owner: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) ExistsByPhotoURL(ctx context.Context, photoURL string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM pets WHERE photo_url = $1)`

	if err := r.pool.QueryRow(ctx, query, photoURL).Scan(&exists); err != nil {
		return false, fmt.Errorf("check photo url: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, petCacheKey(id)); err != nil {
		log.Warn().Err(err).Str("pet_id", id).Msg("Pet cache invalidation failed")
	}
}

// scanPet works for both pgx.Row and pgx.Rows.
func scanPet(row pgx.Row) (*model.Pet, error) {
	var pet model.Pet
	var species string
	var weight decimal.NullDecimal

	err := row.Scan(
		&pet.ID,
		&pet.Name,
		&species,
		&pet.Breed,
		&pet.Age,
		&pet.Birthdate,
		&weight,
		&pet.Nickname,
		&pet.Owner,
		&pet.RegistrationDate,
		&pet.PhotoURL,
		&pet.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	pet.Species = model.Species(species)
	if weight.Valid {
		pet.Weight = &weight.Decimal
	}
	return &pet, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
