package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/sparkkhoj/spark-khoj/internal/logger"
	"github.com/sparkkhoj/spark-khoj/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, profile updates, and the leaderboard
// projection against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, stats, timestamps).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account — including the stat fields
// the database defaulted to zero.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) on users.email → [ErrEmailAlreadyExists].
//     The UNIQUE constraint is the single enforcement point for email
//     uniqueness; there is no separate existence check, so concurrent
//     registrations of the same email cannot both succeed.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Name, user.Email, user.PasswordHash, user.Role, user.Sport, user.Location, user.ProfilePictureURL)

	var created models.User
	if err := scanUser(row, &created); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// login key.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves the user record with the given identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := scanUser(row, &foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// UpdateProfile applies a partial profile update to the user with the given
// id and returns the updated record. Nil fields in update are left unchanged;
// ranking stats and role have no update path here.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, update models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args := buildUpdateProfileQuery(userID, update)

	var updated models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanUser(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error: profile update failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// Leaderboard returns users ordered by total score with a database-computed
// rank, optionally filtered by role and sport. The result size is capped by
// the repository regardless of the requested limit.
func (r *userRepository) Leaderboard(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLeaderboardQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Leaderboard").Msg("error: leaderboard query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.LeaderboardEntry, 0)
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err = rows.Scan(&entry.Rank, &entry.UserID, &entry.Name, &entry.Role, &entry.Sport, &entry.Location, &entry.TotalScore); err != nil {
			log.Err(err).Str("func", "*userRepository.Leaderboard").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// scanUser reads one full users row into dst in [userColumns] order.
func scanUser(row *sql.Row, dst *models.User) error {
	return row.Scan(
		&dst.UserID,
		&dst.Name,
		&dst.Email,
		&dst.PasswordHash,
		&dst.Role,
		&dst.Sport,
		&dst.Location,
		&dst.ProfilePictureURL,
		&dst.DistrictRank,
		&dst.StateRank,
		&dst.TotalScore,
		&dst.CreatedAt,
		&dst.UpdatedAt,
	)
}
